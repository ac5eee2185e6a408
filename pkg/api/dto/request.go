package dto

import "github.com/LENAX/ppm/pkg/model"

// ApplicantRequest 创建/更新申请人请求
type ApplicantRequest struct {
	FirstName      string `json:"first_name" binding:"required,max=100"`
	LastName       string `json:"last_name" binding:"required,max=100"`
	DoB            string `json:"dob" binding:"required"`
	Gender         string `json:"gender" binding:"omitempty,max=20"`
	ResidencyState string `json:"residency_state" binding:"omitempty,max=50"`
	// IsActive 省略时为true
	IsActive *bool `json:"is_active"`
}

// ToModel 转换为记录
func (r ApplicantRequest) ToModel() model.Applicant {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return model.Applicant{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DoB:            r.DoB,
		Gender:         r.Gender,
		ResidencyState: r.ResidencyState,
		IsActive:       active,
	}
}

// Patch 基于当前记录生成更新内容
// is_active省略时保留当前值，而不是回落为true
func (r ApplicantRequest) Patch(current model.Applicant) model.Applicant {
	next := r.ToModel()
	if r.IsActive == nil {
		next.IsActive = current.IsActive
	}
	return next
}

// AddressRequest 创建/更新地址请求
type AddressRequest struct {
	StreetNo  string `json:"street_no" binding:"omitempty,max=10"`
	Street    string `json:"street" binding:"required,max=100"`
	City      string `json:"city" binding:"omitempty,max=50"`
	State     string `json:"state" binding:"omitempty,max=50"`
	Zip       string `json:"zip" binding:"omitempty,max=10"`
	Type      string `json:"type" binding:"omitempty,max=50"`
	OwnerID   int64  `json:"owner_id" binding:"omitempty,min=0"`
	OwnerType string `json:"owner_type" binding:"omitempty,max=50"`
}

// ToModel 转换为记录
func (r AddressRequest) ToModel() model.Address {
	return model.Address{
		StreetNo:  r.StreetNo,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		Zip:       r.Zip,
		Type:      r.Type,
		OwnerID:   r.OwnerID,
		OwnerType: r.OwnerType,
	}
}

// ContactRequest 创建/更新联系人请求
type ContactRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Phone        string `json:"phone" binding:"required,max=15"`
	Relationship string `json:"relationship" binding:"required,max=50"`
}

// ToModel 转换为记录
func (r ContactRequest) ToModel() model.Contact {
	return model.Contact{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		Relationship: r.Relationship,
	}
}
