package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/LENAX/ppm/pkg/api/dto"
	"github.com/LENAX/ppm/pkg/cli/client"
	"github.com/LENAX/ppm/pkg/cli/output"
	"github.com/LENAX/ppm/pkg/model"
	"github.com/spf13/cobra"
)

// recordCommand 单个实体命令的描述
// R为请求体类型，T为记录类型
type recordCommand[T any, R any] struct {
	use      string
	name     string
	resource string
	headers  []string
	row      func(T) []string
	id       func(T) int64
}

var applicantCmd = newRecordCmd(recordCommand[model.Applicant, dto.ApplicantRequest]{
	use:      "applicant",
	name:     "申请人",
	resource: client.Applicants,
	headers:  []string{"ID", "NAME", "DOB", "GENDER", "STATE", "ACTIVE"},
	row: func(a model.Applicant) []string {
		return []string{
			strconv.FormatInt(a.ID, 10),
			a.FullName(),
			a.DoB,
			a.Gender,
			a.ResidencyState,
			strconv.FormatBool(a.IsActive),
		}
	},
	id: model.Applicant.GetID,
})

var addressCmd = newRecordCmd(recordCommand[model.Address, dto.AddressRequest]{
	use:      "address",
	name:     "地址",
	resource: client.Addresses,
	headers:  []string{"ID", "STREET", "CITY", "STATE", "ZIP", "TYPE", "OWNER"},
	row: func(a model.Address) []string {
		return []string{
			strconv.FormatInt(a.ID, 10),
			a.StreetNo + " " + a.Street,
			a.City,
			a.State,
			a.Zip,
			a.Type,
			fmt.Sprintf("%s#%d", a.OwnerType, a.OwnerID),
		}
	},
	id: model.Address.GetID,
})

var contactCmd = newRecordCmd(recordCommand[model.Contact, dto.ContactRequest]{
	use:      "contact",
	name:     "联系人",
	resource: client.Contacts,
	headers:  []string{"ID", "NAME", "PHONE", "RELATIONSHIP"},
	row: func(c model.Contact) []string {
		return []string{
			strconv.FormatInt(c.ID, 10),
			c.FirstName + " " + c.LastName,
			c.Phone,
			c.Relationship,
		}
	},
	id: model.Contact.GetID,
})

// newRecordCmd 构建list/get/create/update/delete子命令
func newRecordCmd[T any, R any](rc recordCommand[T, R]) *cobra.Command {
	root := &cobra.Command{
		Use:   rc.use,
		Short: rc.name + "管理命令",
		Long:  fmt.Sprintf("管理%s记录，包括列出、查看、创建、更新和删除。", rc.name),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "列出所有" + rc.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.List[T](client.New(serverURL), rc.resource)
			if err != nil {
				output.Error("查询失败: %v", err)
				return err
			}
			if outputJSON {
				return output.PrintJSON(result)
			}
			rc.render(result.Items...)
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "查看" + rc.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			record, err := client.Get[T](client.New(serverURL), rc.resource, id)
			if err != nil {
				output.Error("查询失败: %v", err)
				return err
			}
			if outputJSON {
				return output.PrintJSON(record)
			}
			rc.render(*record)
			return nil
		},
	}

	var data, file string
	var createID int64
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "创建" + rc.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest[R](data, file)
			if err != nil {
				return err
			}
			record, err := client.Create[T](client.New(serverURL), rc.resource, createID, req)
			if err != nil {
				output.Error("创建失败: %v", err)
				return err
			}
			if outputJSON {
				return output.PrintJSON(record)
			}
			output.Success("%s创建成功: %d", rc.name, rc.id(*record))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&data, "data", "d", "", "JSON格式的记录内容")
	createCmd.Flags().StringVarP(&file, "file", "f", "", "包含JSON记录的文件")
	createCmd.Flags().Int64Var(&createID, "id", 0, "指定ID（仅内存存储支持）")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "更新" + rc.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			req, err := readRequest[R](data, file)
			if err != nil {
				return err
			}
			record, err := client.Update[T](client.New(serverURL), rc.resource, id, req)
			if err != nil {
				output.Error("更新失败: %v", err)
				return err
			}
			if outputJSON {
				return output.PrintJSON(record)
			}
			output.Success("%s更新成功: %d", rc.name, id)
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&data, "data", "d", "", "JSON格式的记录内容")
	updateCmd.Flags().StringVarP(&file, "file", "f", "", "包含JSON记录的文件")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "删除" + rc.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if err := client.Delete(client.New(serverURL), rc.resource, id); err != nil {
				output.Error("删除失败: %v", err)
				return err
			}
			output.Success("%s已删除: %d", rc.name, id)
			return nil
		},
	}

	root.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return root
}

func (rc recordCommand[T, R]) render(records ...T) {
	if len(records) == 0 {
		output.Info("暂无%s", rc.name)
		return
	}
	table := output.NewTable(rc.headers)
	for _, r := range records {
		table.AddRow(rc.row(r))
	}
	table.Render()
}

func parseIDArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("无效的ID: %s", s)
	}
	return id, nil
}

// readRequest 从--data或--file读取请求体，严格校验字段名
func readRequest[R any](data, file string) (*R, error) {
	raw := []byte(data)
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("读取文件失败: %w", err)
		}
		raw = content
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("需要--data或--file")
	}

	var req R
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("解析记录失败: %w", err)
	}
	return &req, nil
}
