package main

import (
	"errors"
	"log"
	"os"

	"github.com/yojanasetu/portal-go/internal/api/middleware"
	"github.com/yojanasetu/portal-go/internal/config"
	"github.com/yojanasetu/portal-go/internal/config/db"
	"github.com/yojanasetu/portal-go/internal/domain/scheme"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/pkg/types"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedScheme is the YAML shape of one catalogue entry.
type seedScheme struct {
	Title             string             `yaml:"title"`
	Description       string             `yaml:"description"`
	Department        string             `yaml:"department"`
	SchemeType        string             `yaml:"schemeType"`
	OfficialLink      string             `yaml:"officialLink"`
	Eligibility       seedEligibility `yaml:"eligibility"`
	FormFields        []seedFormField `yaml:"formFields"`
	Benefits          []string        `yaml:"benefits"`
	HowToApply        string          `yaml:"howToApply"`
	DocumentsRequired []string        `yaml:"documentsRequired"`
}

type seedEligibility struct {
	AgeMin             int    `yaml:"ageMin"`
	AgeMax             int    `yaml:"ageMax"`
	AnnualIncomeMax    int    `yaml:"annualIncomeMax"`
	State              string `yaml:"state"`
	Gender             string `yaml:"gender"`
	CasteCategory      string `yaml:"casteCategory"`
	Occupation         string `yaml:"occupation"`
	RequiresBPL        bool   `yaml:"requiresBPL"`
	RequiresDisability bool   `yaml:"requiresDisability"`
	EducationLevelMin  int    `yaml:"educationLevelMin"`
}

type seedFormField struct {
	Label     string   `yaml:"label"`
	FieldType string   `yaml:"fieldType"`
	Options   []string `yaml:"options"`
	Required  bool     `yaml:"required"`
}

type seedFile struct {
	Admin struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Schemes []seedScheme `yaml:"schemes"`
}

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	if err := db.DB.AutoMigrate(&user.User{}, &scheme.Scheme{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	content, err := os.ReadFile(config.SeedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", config.SeedFile, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	admin, err := seedAdmin(seed)
	if err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	created, skipped := 0, 0
	for _, s := range seed.Schemes {
		ok, err := seedOne(s, admin.UID)
		if err != nil {
			log.Fatalf("Failed to seed scheme %q: %v", s.Title, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	log.Printf("Seed complete: %d schemes created, %d already present", created, skipped)
}

func seedAdmin(seed seedFile) (*user.User, error) {
	if seed.Admin.Email == "" {
		return nil, errors.New("seed file has no admin account")
	}

	var admin user.User
	err := db.DB.Where("email = ?", seed.Admin.Email).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin = user.User{
		Username: seed.Admin.Username,
		Email:    seed.Admin.Email,
		Password: string(hashed),
		Role:     types.RoleAdmin,
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		return nil, err
	}
	log.Printf("Admin account created: %s", admin.Email)
	return &admin, nil
}

// seedOne inserts a catalogue entry unless a scheme with the same title
// already exists. Returns true when a row was created.
func seedOne(s seedScheme, postedBy uint) (bool, error) {
	var count int64
	if err := db.DB.Model(&scheme.Scheme{}).Where("title = ?", s.Title).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	fields := make([]scheme.FormField, 0, len(s.FormFields))
	for _, f := range s.FormFields {
		fields = append(fields, scheme.FormField{
			Label:     f.Label,
			FieldType: scheme.FieldType(f.FieldType),
			Options:   f.Options,
			Required:  f.Required,
		})
	}

	row := scheme.Scheme{
		Title:             s.Title,
		Description:       s.Description,
		Department:        s.Department,
		SchemeType:        scheme.SchemeType(s.SchemeType),
		OfficialLink:      s.OfficialLink,
		Eligibility: scheme.Eligibility{
			AgeMin:             s.Eligibility.AgeMin,
			AgeMax:             s.Eligibility.AgeMax,
			AnnualIncomeMax:    s.Eligibility.AnnualIncomeMax,
			State:              s.Eligibility.State,
			Gender:             s.Eligibility.Gender,
			CasteCategory:      s.Eligibility.CasteCategory,
			Occupation:         s.Eligibility.Occupation,
			RequiresBPL:        s.Eligibility.RequiresBPL,
			RequiresDisability: s.Eligibility.RequiresDisability,
			EducationLevelMin:  s.Eligibility.EducationLevelMin,
		},
		FormFields:        datatypes.NewJSONSlice(fields),
		Benefits:          datatypes.NewJSONSlice(s.Benefits),
		HowToApply:        s.HowToApply,
		DocumentsRequired: datatypes.NewJSONSlice(s.DocumentsRequired),
		PostedBy:          postedBy,
	}
	if err := db.DB.Create(&row).Error; err != nil {
		return false, err
	}
	return true, nil
}
