package models

type Product struct {
	PID         uint    `gorm:"primaryKey;autoIncrement;column:pid" json:"pid"`
	CatID       uint    `gorm:"not null;index;column:catid" json:"catid"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Thumbnail   string  `json:"thumbnail"`
}
