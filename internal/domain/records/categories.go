package records

// Fixed category labels, reproduced verbatim for compatibility with the
// persisted blob and the CSV export. Treated as configuration, never computed.

var CategoriesPrestations = []string{
	"Extensions de cils : Pose cil à cil",
	"Extensions de cils : poses légères",
	"Extensions de cils : pose volume russe",
	"Extensions de cils : Pose Liner & Fox eyes",
	"Extensions de cils : pose signature Esma beauty",
	"Suppléments aux extensions de cils",
	"Déposes",
}

var CategoriesDepenses = []string{
	"loyer",
	"facture electricité",
	"facture internet",
	"telephone",
	"fournisseur cil",
	"materiel",
	"logiciel planity",
	"canva pro",
	"capcut pro",
	"chatgpt",
	"icloud stockage",
	"meta ads",
	"meta verified",
	"autres",
}

func IsPrestationCategorie(label string) bool {
	return containsLabel(CategoriesPrestations, label)
}

func IsDepenseCategorie(label string) bool {
	return containsLabel(CategoriesDepenses, label)
}

func containsLabel(labels []string, label string) bool {
	for _, candidate := range labels {
		if candidate == label {
			return true
		}
	}
	return false
}
