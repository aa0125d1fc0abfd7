package domain

import (
	"time"

	"github.com/samber/lo"
)

// Organization представляет организацию с владельцем и списком участников
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	MemberIDs []string  `json:"member_ids"` // Владелец может как входить в список, так и нет
	CreatedAt time.Time `json:"created_at"`
}

// IsOwner возвращает true если пользователь является владельцем организации
func (o *Organization) IsOwner(userID string) bool {
	return o.OwnerID == userID
}

// HasMember проверяет, состоит ли пользователь в организации
func (o *Organization) HasMember(userID string) bool {
	return lo.Contains(o.MemberIDs, userID)
}

// CanView возвращает true если пользователь видит организацию (владелец или участник)
func (o *Organization) CanView(userID string) bool {
	return o.IsOwner(userID) || o.HasMember(userID)
}

// OrganizationIDs возвращает идентификаторы переданных организаций в исходном порядке
func OrganizationIDs(orgs []*Organization) []string {
	return lo.Map(orgs, func(o *Organization, _ int) string {
		return o.ID
	})
}
