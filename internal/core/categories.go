package core

// Category is one entry of the static catalog. Expenses reference it by ID.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var catalog = []Category{
	{ID: "1", Name: "Ahorro", Icon: "ahorro"},
	{ID: "2", Name: "Comida", Icon: "comida"},
	{ID: "3", Name: "Casa", Icon: "casa"},
	{ID: "4", Name: "Gastos Varios", Icon: "gastos"},
	{ID: "5", Name: "Ocio", Icon: "ocio"},
	{ID: "6", Name: "Salud", Icon: "salud"},
	{ID: "7", Name: "Suscripciones", Icon: "suscripciones"},
}

// Categories returns a copy of the catalog in display order.
func Categories() []Category {
	return append([]Category(nil), catalog...)
}

// CategoryByID looks up a catalog entry.
func CategoryByID(id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
