package domain

import "time"

// IssueStatus представляет статус задачи
type IssueStatus string

// Возможные статусы задачи
const (
	IssueOpen   IssueStatus = "OPEN"   // Задача открыта
	IssueClosed IssueStatus = "CLOSED" // Задача закрыта
)

// Issue представляет задачу внутри организации
type Issue struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organization_id"`
	AuthorID       string      `json:"author_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Status         IssueStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	ClosedAt       *time.Time  `json:"closed_at,omitempty"`
}

// IsClosed возвращает true если задача находится в статусе CLOSED
func (i *Issue) IsClosed() bool {
	return i.Status == IssueClosed
}
