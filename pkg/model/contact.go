package model

// Contact 联系人记录
type Contact struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"` // 与申请人的关系
}

// GetID 返回记录ID
func (c Contact) GetID() int64 { return c.ID }

// WithID 返回设置了ID的副本
func (c Contact) WithID(id int64) Contact {
	c.ID = id
	return c
}

// Entity 返回实体名称
func (Contact) Entity() string { return "contact" }

// Validate 校验字段
func (c Contact) Validate() error {
	return checkFields("contact",
		fieldRule{name: "first_name", value: c.FirstName, required: true, maxLen: 100},
		fieldRule{name: "last_name", value: c.LastName, required: true, maxLen: 100},
		fieldRule{name: "phone", value: c.Phone, required: true, maxLen: 15},
		fieldRule{name: "relationship", value: c.Relationship, required: true, maxLen: 50},
	)
}
