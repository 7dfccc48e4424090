package model

type Transport struct {
	DTO
	Name     string `gorm:"size:100;not null" json:"name"`
	Icon     string `gorm:"size:500" json:"icon"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type Stay struct {
	DTO
	Name     string `gorm:"size:100;not null" json:"name"`
	Icon     string `gorm:"size:500" json:"icon"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type TransportReview struct {
	DTO
	TransportId uint   `gorm:"not null;uniqueIndex:idx_transport_review_user" json:"transportId"`
	UserId      uint   `gorm:"not null;uniqueIndex:idx_transport_review_user" json:"userId"`
	Rating      int    `gorm:"not null" json:"rating"`
	Comment     string `gorm:"size:1000" json:"comment"`

	Transport Transport   `gorm:"foreignKey:TransportId;constraint:OnDelete:CASCADE" json:"-"`
	User      UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type StayReview struct {
	DTO
	StayId  uint   `gorm:"not null;uniqueIndex:idx_stay_review_user" json:"stayId"`
	UserId  uint   `gorm:"not null;uniqueIndex:idx_stay_review_user" json:"userId"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	Stay Stay        `gorm:"foreignKey:StayId;constraint:OnDelete:CASCADE" json:"-"`
	User UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}
