package view

type AdminCatalogRow struct {
	ID        int
	Name      string
	Model     string
	Processor string
	Storage   string
	Price     string
	Discount  string
	Rating    string
	Reviews   int
	Actions   []Action
}

type AdminCatalogPage struct {
	Rows   []AdminCatalogRow
	Layout ActionLayout
	Size   ActionSize
}
