package domain

// StatusReport é o relatório de status gerado sob demanda
type StatusReport struct {
	Report      string  `json:"report"`
	GeneratedAt string  `json:"generated_at"` // Formato yyyy-mm-dd (UTC)
	Velocity    float64 `json:"velocity"`
}
