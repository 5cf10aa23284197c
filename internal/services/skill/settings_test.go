package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_CreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")

	settings, userSkills, err := LoadSettings(dir)
	require.NoError(t, err)

	assert.Equal(t, "system | 시스템", settings.AuthorizedNickname)
	assert.Equal(t, 10, settings.System.MaxSkillDuration)
	assert.Equal(t, []string{RoleUsersOnly}, settings.SkillUsers[entities.SkillPhoenix])
	assert.Empty(t, userSkills)

	assert.FileExists(t, filepath.Join(dir, settingsFileName))
	assert.FileExists(t, filepath.Join(dir, userSkillsFileName))
}

func TestLoadSettings_ReadsExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(`{
  "authorized_admins": ["42"],
  "authorized_nickname": "GM",
  "skill_users": {"오닉셀": ["admin"]},
  "system_settings": {"max_skill_duration": 5}
}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, userSkillsFileName), []byte(`{
  "7": {"allowed_skills": ["오닉셀", "피닉스"]}
}`), 0o644))

	settings, userSkills, err := LoadSettings(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"42"}, settings.AuthorizedAdmins)
	assert.Equal(t, "GM", settings.AuthorizedNickname)
	assert.Equal(t, 5, settings.System.MaxSkillDuration)
	assert.Equal(t, 30, settings.System.AutoSaveInterval)
	assert.Equal(t, 20, settings.Lucencia.HealthCost)
	assert.Equal(t, []entities.SkillName{entities.SkillOnixel, entities.SkillPhoenix}, userSkills["7"].AllowedSkills)
}

func TestLoadSettings_CorruptFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(`{not json`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, userSkillsFileName), []byte(`[]`), 0o644))

	settings, userSkills, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().AuthorizedAdmins, settings.AuthorizedAdmins)
	assert.Empty(t, userSkills)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 1, Priority(entities.SkillCoalFold))
	assert.Equal(t, 2, Priority(entities.SkillOnixel))
	assert.Equal(t, 3, Priority(entities.SkillOriven))
	assert.Equal(t, 10, Priority(entities.SkillKaron))
	assert.Equal(t, DefaultPriority, Priority(entities.SkillName("모름")))
	assert.Equal(t, "🔮", Emoji(entities.SkillName("모름")))
	assert.Len(t, Catalogue, 16)
	assert.Len(t, NewRegistry().handlers, 16)
}
