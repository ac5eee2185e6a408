package model

import (
	"fmt"
	"time"
)

// Applicant 申请人记录（Member/Applicant）
type Applicant struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DoB            string `json:"dob"` // YYYY-MM-DD
	Gender         string `json:"gender"`
	ResidencyState string `json:"residency_state"`
	IsActive       bool   `json:"is_active"`
}

// GetID 返回记录ID
func (a Applicant) GetID() int64 { return a.ID }

// WithID 返回设置了ID的副本
func (a Applicant) WithID(id int64) Applicant {
	a.ID = id
	return a
}

// Entity 返回实体名称
func (Applicant) Entity() string { return "applicant" }

// Validate 校验字段
func (a Applicant) Validate() error {
	if err := checkFields("applicant",
		fieldRule{name: "first_name", value: a.FirstName, required: true, maxLen: 100},
		fieldRule{name: "last_name", value: a.LastName, required: true, maxLen: 100},
		fieldRule{name: "dob", value: a.DoB, required: true},
		fieldRule{name: "gender", value: a.Gender, maxLen: 20},
		fieldRule{name: "residency_state", value: a.ResidencyState, maxLen: 50},
	); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, a.DoB); err != nil {
		return fmt.Errorf("%w: applicant.dob 格式应为YYYY-MM-DD: %q", ErrInvalid, a.DoB)
	}
	return nil
}

// FullName 返回姓名
func (a Applicant) FullName() string {
	return a.FirstName + " " + a.LastName
}
