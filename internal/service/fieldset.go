package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const msgEmptyBody = "You must send information in the body"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 校验错误使用 JSON 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldSet 请求体字段白名单：Required 为创建时必填字段，Allowed 为允许出现的全部字段
type FieldSet struct {
	Required []string
	Allowed  []string
}

// NewFieldSet 创建字段白名单，optional 为允许但非必填的字段
func NewFieldSet(required []string, optional ...string) FieldSet {
	allowed := make([]string, 0, len(required)+len(optional))
	allowed = append(allowed, required...)
	allowed = append(allowed, optional...)
	return FieldSet{Required: required, Allowed: allowed}
}

// DecodeCreate 校验创建请求：必填字段齐全、不含白名单外字段，然后解码到 dst
func (f FieldSet) DecodeCreate(body []byte, dst any) error {
	raw, err := parseObject(body)
	if err != nil {
		return err
	}
	for _, field := range f.Required {
		if _, ok := raw[field]; !ok {
			return validationf("The fields %s are required", joinFields(f.Required))
		}
	}
	return f.decode(raw, body, dst)
}

// DecodeUpdate 校验更新请求：请求体非空、不含白名单外字段，不要求必填字段；返回出现的字段
func (f FieldSet) DecodeUpdate(body []byte, dst any) ([]string, error) {
	raw, err := parseObject(body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, validationf(msgEmptyBody)
	}
	if err := f.decode(raw, body, dst); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for _, field := range f.Allowed {
		if _, ok := raw[field]; ok {
			keys = append(keys, field)
		}
	}
	return keys, nil
}

func (f FieldSet) decode(raw map[string]json.RawMessage, body []byte, dst any) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !f.allows(k) {
			return validationf("Allowed fields %s", joinFields(f.Allowed))
		}
		if string(raw[k]) == "null" {
			return validationf("Field %s cannot be null", k)
		}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validationf("Invalid value for field %s", typeErr.Field)
		}
		return validationf(msgEmptyBody)
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return validationf("Invalid value for field %s", fieldErrs[0].Field())
		}
		return err
	}
	return nil
}

func (f FieldSet) allows(field string) bool {
	for _, a := range f.Allowed {
		if a == field {
			return true
		}
	}
	return false
}

// parseObject 请求体必须是 JSON 对象
func parseObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, validationf(msgEmptyBody)
	}
	return raw, nil
}

// joinFields 把字段列表拼成 "a, b and c"
func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
}
