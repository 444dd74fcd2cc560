package repository

import (
	"context"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrProjectNotFound  = errors.New("project document not found")
	ErrProjectMalformed = errors.New("project document malformed")
)

// Schema padrão do documento do projeto: lista de sprints com os cinco campos numéricos
const defaultProjectSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["sprints"],
	"properties": {
		"sprints": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["delivered_points", "planned_points", "ev", "pv", "ac"],
				"properties": {
					"delivered_points": {"type": "number"},
					"planned_points": {"type": "number"},
					"ev": {"type": "number"},
					"pv": {"type": "number"},
					"ac": {"type": "number"}
				}
			}
		}
	}
}`

// ProjectRepository carrega o documento de acompanhamento do projeto
type ProjectRepository interface {
	Load(ctx context.Context) (*domain.ProjectDocument, error)
}

type jsonProjectRepository struct {
	path   string
	schema *gojsonschema.Schema
}

// NewJSONProjectRepository cria o repositório do documento JSON. schemaPath vazio usa o schema padrão.
func NewJSONProjectRepository(path string, schemaPath string) (ProjectRepository, error) {
	loader := gojsonschema.NewStringLoader(defaultProjectSchema)
	if schemaPath != "" {
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler schema do projeto %s", schemaPath)
		}
		loader = gojsonschema.NewBytesLoader(data)
	}

	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, errors.Wrap(err, "schema do projeto inválido")
	}

	return &jsonProjectRepository{
		path:   path,
		schema: schema,
	}, nil
}

func (r *jsonProjectRepository) Load(_ context.Context) (*domain.ProjectDocument, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrProjectNotFound, "arquivo %s", r.path)
		}
		return nil, errors.Wrapf(err, "erro ao ler documento do projeto %s", r.path)
	}

	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, errors.Wrapf(ErrProjectMalformed, "json inválido: %v", err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			messages = append(messages, e.String())
		}
		return nil, errors.Wrap(ErrProjectMalformed, strings.Join(messages, "; "))
	}

	var document domain.ProjectDocument
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, errors.Wrapf(ErrProjectMalformed, "erro ao decodificar: %v", err)
	}

	return &document, nil
}
