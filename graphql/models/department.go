package models

type Department struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	ProductCount int32  `json:"product_count"`
}

type DepartmentProducts struct {
	Department string     `json:"department"`
	Products   []*Product `json:"products"`
}
