package layouts

import "github.com/JonMunkholm/cutoffs/internal/core"

// DCECEPM25Key identifies the DCECE PM/PE nursing cutoff export.
const DCECEPM25Key = "dcece_pm25"

func init() {
	registerDCECEPM25()
}

// The DCECE export lists one row per institute/branch/category with the UR
// opening and closing ranks in columns 4-5 and the category closing rank in
// column 8. Rows missing a branch or category belong to the A.N.M. programme
// and the unreserved list.
func registerDCECEPM25() {
	core.Register(core.Layout{
		Key:        DCECEPM25Key,
		Label:      "DCECE PM25 nursing cutoffs",
		HeaderRows: 5,
		MinCells:   3,
		Columns: core.Columns{
			Institute:       0,
			Branch:          2,
			Category:        3,
			Opening:         4,
			Closing:         5,
			CategoryClosing: 8,
		},
		DefaultBranch:   "A.N.M.",
		DefaultCategory: "UR",
	})
}
