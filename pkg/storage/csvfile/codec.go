package csvfile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
)

// Codec 记录与CSV行之间的转换（对外导出）
// 第一列固定为ID
type Codec[T storage.Record[T]] interface {
	// Header 返回固定表头，列顺序即文件格式
	Header() []string
	// Encode 将记录编码为一行
	Encode(record T) []string
	// Decode 将一行解码为记录
	Decode(row []string) (T, error)
	// Merge 用src中提供的字段覆盖dst，未提供（零值）的字段保留原值
	Merge(dst, src T) T
}

// AddressColumns address.csv 表头
var AddressColumns = []string{
	"Address_ID",
	"Street_No",
	"Street",
	"City",
	"State",
	"Zip",
	"Type",
	"OwnerID",
	"OwnerType",
}

// ApplicantColumns applicant.csv 表头
var ApplicantColumns = []string{
	"Applicant_ID",
	"FirstName",
	"LastName",
	"DoB",
	"Gender",
	"ResidencyState",
	"IsActive",
}

// ContactColumns contact.csv 表头
var ContactColumns = []string{
	"Contact_ID",
	"First_Name",
	"Last_Name",
	"Phone",
	"Applicant_Relationship",
}

// AddressCodec Address编解码
type AddressCodec struct{}

// Header 返回表头副本
func (AddressCodec) Header() []string { return append([]string(nil), AddressColumns...) }

// Encode 编码
func (AddressCodec) Encode(a model.Address) []string {
	return []string{
		formatInt(a.ID), a.StreetNo, a.Street, a.City, a.State, a.Zip, a.Type, formatInt(a.OwnerID), a.OwnerType,
	}
}

// Decode 解码
func (c AddressCodec) Decode(row []string) (model.Address, error) {
	if err := checkWidth(row, len(AddressColumns)); err != nil {
		return model.Address{}, err
	}
	id, err := parseInt("Address_ID", row[0])
	if err != nil {
		return model.Address{}, err
	}
	owner, err := parseInt("OwnerID", row[7])
	if err != nil {
		return model.Address{}, err
	}
	return model.Address{
		ID:        id,
		StreetNo:  row[1],
		Street:    row[2],
		City:      row[3],
		State:     row[4],
		Zip:       row[5],
		Type:      row[6],
		OwnerID:   owner,
		OwnerType: row[8],
	}, nil
}

// Merge 合并
func (AddressCodec) Merge(dst, src model.Address) model.Address {
	mergeString(&dst.StreetNo, src.StreetNo)
	mergeString(&dst.Street, src.Street)
	mergeString(&dst.City, src.City)
	mergeString(&dst.State, src.State)
	mergeString(&dst.Zip, src.Zip)
	mergeString(&dst.Type, src.Type)
	mergeString(&dst.OwnerType, src.OwnerType)
	if src.OwnerID != 0 {
		dst.OwnerID = src.OwnerID
	}
	return dst
}

// ApplicantCodec Applicant编解码
type ApplicantCodec struct{}

// Header 返回表头副本
func (ApplicantCodec) Header() []string { return append([]string(nil), ApplicantColumns...) }

// Encode 编码
func (ApplicantCodec) Encode(a model.Applicant) []string {
	return []string{
		formatInt(a.ID), a.FirstName, a.LastName, a.DoB, a.Gender, a.ResidencyState, strconv.FormatBool(a.IsActive),
	}
}

// Decode 解码
func (ApplicantCodec) Decode(row []string) (model.Applicant, error) {
	if err := checkWidth(row, len(ApplicantColumns)); err != nil {
		return model.Applicant{}, err
	}
	id, err := parseInt("Applicant_ID", row[0])
	if err != nil {
		return model.Applicant{}, err
	}
	active := true
	if row[6] != "" {
		active, err = strconv.ParseBool(row[6])
		if err != nil {
			return model.Applicant{}, fmt.Errorf("解析IsActive失败: %w", err)
		}
	}
	return model.Applicant{
		ID:             id,
		FirstName:      row[1],
		LastName:       row[2],
		DoB:            row[3],
		Gender:         row[4],
		ResidencyState: row[5],
		IsActive:       active,
	}, nil
}

// Merge 合并；bool没有"未提供"状态，IsActive总是取新值
// HTTP层在请求省略is_active时会先填入当前值，见dto.ApplicantRequest.Patch
func (ApplicantCodec) Merge(dst, src model.Applicant) model.Applicant {
	mergeString(&dst.FirstName, src.FirstName)
	mergeString(&dst.LastName, src.LastName)
	mergeString(&dst.DoB, src.DoB)
	mergeString(&dst.Gender, src.Gender)
	mergeString(&dst.ResidencyState, src.ResidencyState)
	dst.IsActive = src.IsActive
	return dst
}

// ContactCodec Contact编解码
type ContactCodec struct{}

// Header 返回表头副本
func (ContactCodec) Header() []string { return append([]string(nil), ContactColumns...) }

// Encode 编码
func (ContactCodec) Encode(c model.Contact) []string {
	return []string{formatInt(c.ID), c.FirstName, c.LastName, c.Phone, c.Relationship}
}

// Decode 解码
func (ContactCodec) Decode(row []string) (model.Contact, error) {
	if err := checkWidth(row, len(ContactColumns)); err != nil {
		return model.Contact{}, err
	}
	id, err := parseInt("Contact_ID", row[0])
	if err != nil {
		return model.Contact{}, err
	}
	return model.Contact{
		ID:           id,
		FirstName:    row[1],
		LastName:     row[2],
		Phone:        row[3],
		Relationship: row[4],
	}, nil
}

// Merge 合并
func (ContactCodec) Merge(dst, src model.Contact) model.Contact {
	mergeString(&dst.FirstName, src.FirstName)
	mergeString(&dst.LastName, src.LastName)
	mergeString(&dst.Phone, src.Phone)
	mergeString(&dst.Relationship, src.Relationship)
	return dst
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// parseInt 解析整数列，兼容pandas写出的"3.0"
func parseInt(column, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	// 超出int64范围的值转换结果不确定，先行拒绝
	if err != nil || math.Abs(f) >= math.MaxInt64 || f != float64(int64(f)) {
		return 0, fmt.Errorf("解析%s失败: %q", column, s)
	}
	return int64(f), nil
}

func checkWidth(row []string, want int) error {
	if len(row) != want {
		return fmt.Errorf("列数不匹配，期望: %d, 实际: %d", want, len(row))
	}
	return nil
}

// 确保实现接口
var (
	_ Codec[model.Address]   = AddressCodec{}
	_ Codec[model.Applicant] = ApplicantCodec{}
	_ Codec[model.Contact]   = ContactCodec{}
)
