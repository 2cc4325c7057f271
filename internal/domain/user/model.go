package user

import (
	"time"

	"github.com/yojanasetu/portal-go/pkg/types"
)

// Profile holds the citizen attributes matched against scheme eligibility
// rules. Education level is an ordinal: 0 N/A, 1 below 10th, 2 10th pass,
// 3 12th pass, 4 graduate, 5 post-graduate.
type Profile struct {
	FirstName      string `gorm:"size:50" json:"firstName"`
	LastName       string `gorm:"size:50" json:"lastName"`
	Age            int    `gorm:"default:0" json:"age"`
	State          string `gorm:"size:50" json:"state"`
	Gender         string `gorm:"size:20" json:"gender"`
	Occupation     string `gorm:"size:50" json:"occupation"`
	AnnualIncome   int    `gorm:"default:0" json:"annualIncome"`
	CasteCategory  string `gorm:"size:20" json:"casteCategory"`
	IsBPL          bool   `gorm:"default:false" json:"isBPL"`
	IsDisabled     bool   `gorm:"default:false" json:"isDisabled"`
	EducationLevel int    `gorm:"default:0" json:"educationLevel"`
}

// Complete reports whether the profile carries the minimum fields required
// for eligibility ranking.
func (p Profile) Complete() bool {
	return p.Age > 0 && p.State != "" && p.Gender != ""
}

type User struct {
	UID       uint       `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username  string     `gorm:"size:50;not null" json:"username"`
	Email     string     `gorm:"size:100;not null;unique" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Role      types.Role `gorm:"type:user_role;default:'Citizen';not null" json:"role"`
	Profile   Profile    `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	CreatedAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}
