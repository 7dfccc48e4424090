package model

type TourGuide struct {
	DTO
	UserId uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Rating float64 `gorm:"default:0" json:"rating"`

	User UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user"`
}
