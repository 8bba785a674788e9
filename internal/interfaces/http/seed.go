package http

import "github.com/jhoicas/pedidos-sync/internal/domain/entity"

// SeedDemo carga el juego de datos de desarrollo: dos locales con sus
// responsables y un catálogo pequeño de cocina.
func SeedDemo(state *State) {
	areas := []entity.Area{
		{ID: "area-cocina", Name: "Cocina"},
		{ID: "area-barra", Name: "Barra"},
	}
	employees := map[string][]entity.Employee{
		"area-cocina": {
			{ID: "emp-marta", Username: "marta"},
			{ID: "emp-jorge", Username: "jorge"},
		},
		"area-barra": {
			{ID: "emp-lucia", Username: "lucia"},
		},
	}
	categories := []entity.Category{
		{ID: "cat-secos", Denomination: "Secos"},
		{ID: "cat-lacteos", Denomination: "Lácteos"},
		{ID: "cat-bebidas", Denomination: "Bebidas"},
	}
	products := map[string][]entity.CatalogEntry{
		"cat-secos": {
			{ID: "prod-harina", Name: "Harina", UnitOfMeasure: "mass", CategoryID: "cat-secos"},
			{ID: "prod-arroz", Name: "Arroz", UnitOfMeasure: "mass", CategoryID: "cat-secos"},
			{ID: "prod-azucar", Name: "Azúcar", UnitOfMeasure: "mass", CategoryID: "cat-secos"},
		},
		"cat-lacteos": {
			{ID: "prod-leche", Name: "Leche", UnitOfMeasure: "volume", CategoryID: "cat-lacteos"},
			{ID: "prod-queso", Name: "Queso", UnitOfMeasure: "mass", CategoryID: "cat-lacteos"},
		},
		"cat-bebidas": {
			{ID: "prod-gaseosa", Name: "Gaseosa", UnitOfMeasure: "units", CategoryID: "cat-bebidas"},
			{ID: "prod-jugo", Name: "Jugo de naranja", UnitOfMeasure: "volume", CategoryID: "cat-bebidas"},
		},
	}
	stock := map[string]int64{
		"prod-harina":  40,
		"prod-arroz":   25,
		"prod-azucar":  10,
		"prod-leche":   60,
		"prod-queso":   8,
		"prod-gaseosa": 120,
		"prod-jugo":    30,
	}
	state.Seed(areas, employees, categories, products, stock)
}
