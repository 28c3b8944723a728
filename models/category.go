package models

type Category struct {
	CatID    uint      `gorm:"primaryKey;autoIncrement;column:catid" json:"catid"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CatID" json:"products,omitempty"`
}
