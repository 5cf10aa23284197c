package skill

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

const (
	settingsFileName   = "skill_config.json"
	userSkillsFileName = "user_skills.json"
)

// Role values accepted in Settings.SkillUsers. Anything else is a user id.
const (
	RoleAllUsers  = "all_users"
	RoleUsersOnly = "users_only"
	RoleAdmin     = "admin"
	RoleMonster   = "monster"
)

// LucenciaSettings are in narrative health points
type LucenciaSettings struct {
	HealthCost    int `json:"health_cost"`
	RevivalHealth int `json:"revival_health"`
}

// SystemSettings tune the registry itself
type SystemSettings struct {
	AutoSaveInterval int `json:"auto_save_interval"`
	MaxSkillDuration int `json:"max_skill_duration"`
}

// Settings is the gameplay configuration kept in skill_config.json
type Settings struct {
	Lucencia           LucenciaSettings                `json:"lucencia"`
	PriorityUsers      []string                        `json:"priority_users"`
	SkillUsers         map[entities.SkillName][]string `json:"skill_users"`
	AuthorizedAdmins   []string                        `json:"authorized_admins"`
	AuthorizedNickname string                          `json:"authorized_nickname"`
	System             SystemSettings                  `json:"system_settings"`
}

// UserSkillEntry is one user's explicit allow-list
type UserSkillEntry struct {
	AllowedSkills []entities.SkillName `json:"allowed_skills"`
}

// UserSkills maps user ids to their allow-lists
type UserSkills map[string]*UserSkillEntry

// DefaultSettings returns the settings written on first start
func DefaultSettings() *Settings {
	everyone := []string{RoleAllUsers, RoleAdmin, RoleMonster}
	adminOnly := []string{RoleAdmin, RoleMonster}
	return &Settings{
		Lucencia: LucenciaSettings{
			HealthCost:    20,
			RevivalHealth: 50,
		},
		PriorityUsers: []string{
			"1237738945635160104",
			"1059908946741166120",
		},
		SkillUsers: map[entities.SkillName][]string{
			entities.SkillOnixel:   everyone,
			entities.SkillPhoenix:  {RoleUsersOnly},
			entities.SkillOriven:   everyone,
			entities.SkillKaron:    everyone,
			entities.SkillScarnel:  everyone,
			entities.SkillLucencia: everyone,
			entities.SkillVirella:  adminOnly,
			entities.SkillGrim:     adminOnly,
			entities.SkillNixara:   adminOnly,
			entities.SkillJerrunka: everyone,
			entities.SkillNexis:    {"1059908946741166120"},
			entities.SkillVolken:   adminOnly,
			entities.SkillDanmok:   everyone,
			entities.SkillCoalFold: adminOnly,
			entities.SkillHwangya:  adminOnly,
			entities.SkillStravos:  everyone,
		},
		AuthorizedAdmins: []string{
			"1007172975222603798",
			"1090546247770832910",
		},
		AuthorizedNickname: "system | 시스템",
		System: SystemSettings{
			AutoSaveInterval: 30,
			MaxSkillDuration: 10,
		},
	}
}

func (s *Settings) normalize() {
	defaults := DefaultSettings()
	if s.SkillUsers == nil {
		s.SkillUsers = defaults.SkillUsers
	}
	if s.AuthorizedNickname == "" {
		s.AuthorizedNickname = defaults.AuthorizedNickname
	}
	if s.System.MaxSkillDuration <= 0 {
		s.System.MaxSkillDuration = defaults.System.MaxSkillDuration
	}
	if s.System.AutoSaveInterval <= 0 {
		s.System.AutoSaveInterval = defaults.System.AutoSaveInterval
	}
	if s.Lucencia.HealthCost <= 0 {
		s.Lucencia.HealthCost = defaults.Lucencia.HealthCost
	}
	if s.Lucencia.RevivalHealth <= 0 {
		s.Lucencia.RevivalHealth = defaults.Lucencia.RevivalHealth
	}
}

// LoadSettings reads skill_config.json and user_skills.json from dir,
// writing defaults for files that do not exist yet. Unreadable files fall
// back to defaults.
func LoadSettings(dir string) (*Settings, UserSkills, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create skill config dir: %w", err)
	}

	settings := DefaultSettings()
	if found, err := readJSON(filepath.Join(dir, settingsFileName), settings); err != nil {
		log.Printf("Failed to read %s, using defaults: %v", settingsFileName, err)
		settings = DefaultSettings()
	} else if !found {
		if err := writeJSON(filepath.Join(dir, settingsFileName), settings); err != nil {
			return nil, nil, err
		}
	}
	settings.normalize()

	userSkills := make(UserSkills)
	if found, err := readJSON(filepath.Join(dir, userSkillsFileName), &userSkills); err != nil {
		log.Printf("Failed to read %s, using an empty allow-list: %v", userSkillsFileName, err)
		userSkills = make(UserSkills)
	} else if !found {
		if err := writeJSON(filepath.Join(dir, userSkillsFileName), userSkills); err != nil {
			return nil, nil, err
		}
	}

	return settings, userSkills, nil
}

func readJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, err
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
