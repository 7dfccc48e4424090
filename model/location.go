package model

type Division struct {
	DTO
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type District struct {
	DTO
	Name       string `gorm:"size:100;not null;uniqueIndex:idx_district_division_name" json:"name"`
	DivisionId uint   `gorm:"not null;uniqueIndex:idx_district_division_name" json:"divisionId"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`

	Division Division `gorm:"foreignKey:DivisionId" json:"-"`
}

type Upazila struct {
	DTO
	Name       string `gorm:"size:100;not null;uniqueIndex:idx_upazila_district_name" json:"name"`
	DistrictId uint   `gorm:"not null;uniqueIndex:idx_upazila_district_name" json:"districtId"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`

	District District `gorm:"foreignKey:DistrictId" json:"-"`
}
