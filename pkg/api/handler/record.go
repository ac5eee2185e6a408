package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/LENAX/ppm/pkg/api/dto"
	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage"
	"github.com/gin-gonic/gin"
)

// Validatable 可校验的记录
type Validatable[T any] interface {
	storage.Record[T]
	Validate() error
}

// Request 可转换为记录的请求体
type Request[T any] interface {
	ToModel() T
}

// Patcher 更新时需要参考当前记录的请求体（可选）
// 用于表达bool等无法用零值表示"未提供"的字段
type Patcher[T any] interface {
	Patch(current T) T
}

// RecordHandler 单个实体的CRUD处理器
// R为请求体类型，通过gin binding标签做第一层校验
type RecordHandler[T Validatable[T], R Request[T]] struct {
	repo storage.Repository[T]
}

// NewRecordHandler 创建RecordHandler
func NewRecordHandler[T Validatable[T], R Request[T]](repo storage.Repository[T]) *RecordHandler[T, R] {
	return &RecordHandler[T, R]{repo: repo}
}

// NewApplicantHandler 创建申请人处理器
func NewApplicantHandler(repo storage.Repository[model.Applicant]) *RecordHandler[model.Applicant, dto.ApplicantRequest] {
	return NewRecordHandler[model.Applicant, dto.ApplicantRequest](repo)
}

// NewAddressHandler 创建地址处理器
func NewAddressHandler(repo storage.Repository[model.Address]) *RecordHandler[model.Address, dto.AddressRequest] {
	return NewRecordHandler[model.Address, dto.AddressRequest](repo)
}

// NewContactHandler 创建联系人处理器
func NewContactHandler(repo storage.Repository[model.Contact]) *RecordHandler[model.Contact, dto.ContactRequest] {
	return NewRecordHandler[model.Contact, dto.ContactRequest](repo)
}

// List 列出全部记录
// GET /api/v1/{entity}
func (h *RecordHandler[T, R]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ListResponse[T]{
		Total:   len(items),
		Items:   items,
		HasMore: false,
	}))
}

// Create 创建记录，ID由存储分配
// POST /api/v1/{entity}
func (h *RecordHandler[T, R]) Create(c *gin.Context) {
	record, ok := h.bind(c)
	if !ok {
		return
	}

	created, err := h.repo.Create(c.Request.Context(), record)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(created))
}

// Insert 以指定ID创建记录，存储不支持时返回501
// POST /api/v1/{entity}/:id
func (h *RecordHandler[T, R]) Insert(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inserter, supported := h.repo.(storage.Inserter[T])
	if !supported {
		c.JSON(http.StatusNotImplemented, dto.NewErrorResponse(501, "当前存储不支持指定ID创建"))
		return
	}

	record, ok := h.bind(c)
	if !ok {
		return
	}

	created, err := inserter.Insert(c.Request.Context(), record.WithID(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(created))
}

// Get 获取记录
// GET /api/v1/{entity}/:id
func (h *RecordHandler[T, R]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.repo.Read(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// Update 更新记录
// PUT /api/v1/{entity}/:id
func (h *RecordHandler[T, R]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	record := req.ToModel()
	if p, isPatcher := any(req).(Patcher[T]); isPatcher {
		current, err := h.repo.Read(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		record = p.Patch(current)
	}
	if err := record.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, err.Error()))
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, record)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(updated))
}

// Delete 删除记录
// DELETE /api/v1/{entity}/:id
func (h *RecordHandler[T, R]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResponse{ID: id, Deleted: true}))
}

// bindRequest 解析请求体，失败时已写入400响应
func (h *RecordHandler[T, R]) bindRequest(c *gin.Context) (R, bool) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, fmt.Sprintf("请求参数错误: %v", err)))
		return req, false
	}
	return req, true
}

// bind 解析请求体并校验，失败时已写入400响应
func (h *RecordHandler[T, R]) bind(c *gin.Context) (T, bool) {
	var zero T
	req, ok := h.bindRequest(c)
	if !ok {
		return zero, false
	}

	record := req.ToModel()
	if err := record.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, err.Error()))
		return zero, false
	}
	return record, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, fmt.Sprintf("无效的ID: %s", c.Param("id"))))
		return 0, false
	}
	return id, true
}

// writeError 将存储错误映射为HTTP状态码
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case storage.IsNotFound(err):
		status = http.StatusNotFound
	case storage.IsConflict(err):
		status = http.StatusConflict
	case errors.Is(err, model.ErrInvalid):
		status = http.StatusBadRequest
	}
	c.JSON(status, dto.NewErrorResponse(status, err.Error()))
}
