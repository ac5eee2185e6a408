package model

// Address 地址记录
// OwnerID 不做引用完整性校验，可指向任意实体
type Address struct {
	ID        int64  `json:"id"`
	StreetNo  string `json:"street_no"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Type      string `json:"type"`       // Home, Work ...
	OwnerID   int64  `json:"owner_id"`   // 所属实体ID
	OwnerType string `json:"owner_type"` // Applicant, Contact ...
}

// GetID 返回记录ID
func (a Address) GetID() int64 { return a.ID }

// WithID 返回设置了ID的副本
func (a Address) WithID(id int64) Address {
	a.ID = id
	return a
}

// Entity 返回实体名称
func (Address) Entity() string { return "address" }

// Validate 校验字段
func (a Address) Validate() error {
	return checkFields("address",
		fieldRule{name: "street_no", value: a.StreetNo, maxLen: 10},
		fieldRule{name: "street", value: a.Street, required: true, maxLen: 100},
		fieldRule{name: "city", value: a.City, maxLen: 50},
		fieldRule{name: "state", value: a.State, maxLen: 50},
		fieldRule{name: "zip", value: a.Zip, maxLen: 10},
		fieldRule{name: "type", value: a.Type, maxLen: 50},
		fieldRule{name: "owner_type", value: a.OwnerType, maxLen: 50},
	)
}
