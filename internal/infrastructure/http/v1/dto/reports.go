package dto

// --- Provvigioni ---

// ProvvigioniRequest selects the quarter for the commission report.
type ProvvigioniRequest struct {
	Anno      int    `form:"anno" binding:"required"`
	Trimestre int    `form:"trimestre" binding:"required"`
	MulinoID  string `form:"mulino_id"`
}

// --- RIBA ---

// RibaInScadenzaRequest selects the lookahead window in days.
type RibaInScadenzaRequest struct {
	Giorni int `form:"giorni"`
}

// --- Statistiche ---

// RiepilogoAnnoRequest selects the year of the summary.
type RiepilogoAnnoRequest struct {
	Anno int `form:"anno" binding:"required"`
}

// TopClientiRequest selects year and ranking size.
type TopClientiRequest struct {
	Anno   int `form:"anno" binding:"required"`
	Limite int `form:"limite"`
}
