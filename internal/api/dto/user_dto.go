package dto

import "starwars-api/internal/model"

// UserInput 用户创建/更新请求体，字段均为指针以区分"未提供"
type UserInput struct {
	UserName *string `json:"user_name" validate:"omitempty,max=50"`
	Email    *string `json:"email" validate:"omitempty,max=120"`
	Password *string `json:"password" validate:"omitempty,max=80"`
	IsActive *bool   `json:"is_active"`
}

// Columns 返回已提供字段对应的列值
func (in *UserInput) Columns() map[string]any {
	cols := make(map[string]any, 4)
	if in.UserName != nil {
		cols["user_name"] = *in.UserName
	}
	if in.Email != nil {
		cols["email"] = *in.Email
	}
	if in.Password != nil {
		cols["password"] = *in.Password
	}
	if in.IsActive != nil {
		cols["is_active"] = *in.IsActive
	}
	return cols
}

// Apply 把已提供字段写入模型
func (in *UserInput) Apply(u *model.User) {
	if in.UserName != nil {
		u.UserName = *in.UserName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		u.Password = *in.Password
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
}
