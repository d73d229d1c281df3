package entities

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleDelivery Role = "DELIVERY"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleCustomer, RoleSeller, RoleDelivery, RoleAdmin:
		return r, true
	}
	return "", false
}

// Actor уже аутентифицированный участник, от имени которого выполняется операция.
type Actor struct {
	ID   string
	Role Role
}

// Require проверяет роль один раз на входе в операцию движка.
func (a Actor) Require(roles ...Role) error {
	if a.ID == "" {
		return fmt.Errorf("%w: anonymous actor", ErrForbidden)
	}
	for _, r := range roles {
		if a.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s not allowed", ErrForbidden, a.Role)
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

type User struct {
	ID             string
	Role           Role
	Phone          string
	ShopName       string
	Address        string
	City           string
	ApprovalStatus ApprovalStatus
	Status         AccountStatus
	IsAvailable    bool
	DailyStockDate string
	CreatedAt      time.Time
}

// CanFulfill сообщает, может ли продавец быть выбран для заказа в указанный день.
// Продавец, не подтвердивший остатки сегодня, не подбирается даже при положительных остатках.
func (u User) CanFulfill(today string) bool {
	return u.Role == RoleSeller &&
		u.ApprovalStatus == ApprovalApproved &&
		u.Status == AccountActive &&
		u.DailyStockDate == today
}

// CanDeliver курьер допущен к доставке; свободен ли он сейчас, не проверяется.
func (u User) CanDeliver() bool {
	return u.Role == RoleDelivery &&
		u.ApprovalStatus == ApprovalApproved &&
		u.Status == AccountActive
}
