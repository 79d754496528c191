package models

// Tag уникален по имени (регистр учитывается), создаётся при первом использовании.
type Tag struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}
