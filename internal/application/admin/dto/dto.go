package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"oficina/internal/domain/accesslog"
	"oficina/internal/shared/mapper"
)

type ProfileDTO struct {
	ID        uint        `json:"id"`
	Email     string      `json:"email"`
	PhotoPath null.String `json:"foto_perfil"`
}

// AccessLogDTO is an audit record with its origin address extracted.
type AccessLogDTO struct {
	ID        uint      `json:"id"`
	User      string    `json:"usuario"`
	Action    string    `json:"acao"`
	Detail    string    `json:"detalhe"`
	Message   string    `json:"mensagem"`
	Origin    string    `json:"origem"`
	Level     string    `json:"nivel"`
	CreatedAt time.Time `json:"data"`
}

func ToAccessLogDTO(l *accesslog.AccessLog) *AccessLogDTO {
	return &AccessLogDTO{
		ID:        l.ID(),
		User:      "-",
		Action:    l.Action(),
		Detail:    l.Detail(),
		Message:   l.Message(),
		Origin:    l.Origin(),
		Level:     accesslog.LevelInfo,
		CreatedAt: l.CreatedAt(),
	}
}

func ToAccessLogDTOs(logs []*accesslog.AccessLog) []*AccessLogDTO {
	if len(logs) == 0 {
		return []*AccessLogDTO{}
	}
	return mapper.MapSlice(logs, ToAccessLogDTO)
}
