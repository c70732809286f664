package analytics

// Summary carries the period KPIs shown on the dashboard header.
type Summary struct {
	CATotal          float64 `json:"ca_total"`
	NbPrestations    int     `json:"nb_prestations"`
	PanierMoyen      float64 `json:"panier_moyen"`
	ChargesVariables float64 `json:"charges_variables"`
	TotalDepenses    float64 `json:"total_depenses"`
	MargeNette       float64 `json:"marge_nette"`
}

// Comparison relates the current month's revenue to the previous calendar
// month. Only produced for month granularity.
type Comparison struct {
	PrevLabel string  `json:"prev_label"`
	PrevCA    float64 `json:"prev_ca"`
	DeltaPct  int     `json:"delta_pct"`
}

type Report struct {
	Periode     Period      `json:"periode"`
	Summary     Summary     `json:"kpis"`
	Comparaison *Comparison `json:"comparaison,omitempty"`
}

type RepartitionRow struct {
	Categorie string  `json:"categorie"`
	Montant   float64 `json:"montant"`
	Pct       int     `json:"pct"`
}

type SeriePoint struct {
	Label   string  `json:"label"`
	Montant float64 `json:"montant"`
}
