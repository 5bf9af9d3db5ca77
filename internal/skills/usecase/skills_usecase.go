package usecase

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"jobtrail-backend/internal/skills/domain"
	"jobtrail-backend/internal/skills/repository"
	trackerdomain "jobtrail-backend/internal/tracker/domain"
	trackerrepo "jobtrail-backend/internal/tracker/repository"
	"jobtrail-backend/pkg/agent"
	"jobtrail-backend/pkg/capability"
)

// trendFrequencyFloor is the minimum total frequency before a skill can be
// flagged as trending.
const trendFrequencyFloor = 3

// skillsUsecase implements SkillsUsecase
type skillsUsecase struct {
	skillRepo repository.SkillDemandRepository
	appRepo   trackerrepo.ApplicationRepository
	catalog   *domain.SkillCatalog

	keywordPatterns map[string]*regexp.Regexp
	extraPatterns   []*regexp.Regexp
}

// NewSkillsUsecase creates a new instance of skillsUsecase. The keyword
// catalog is injected and compiled once at construction.
func NewSkillsUsecase(skillRepo repository.SkillDemandRepository, appRepo trackerrepo.ApplicationRepository, catalog *domain.SkillCatalog) SkillsUsecase {
	u := &skillsUsecase{
		skillRepo:       skillRepo,
		appRepo:         appRepo,
		catalog:         catalog,
		keywordPatterns: make(map[string]*regexp.Regexp),
	}
	for _, kw := range catalog.Keywords() {
		u.keywordPatterns[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	for _, expr := range catalog.ExtraPatterns {
		u.extraPatterns = append(u.extraPatterns, regexp.MustCompile(`(?i)`+expr))
	}
	return u
}

// RunAggregation recomputes the skill-demand rows from the current set of
// application descriptions. Counts are overwritten, not accumulated, and a
// trend flag set on a previous run stays set.
func (u *skillsUsecase) RunAggregation(userID string) (*agent.RunSummary, error) {
	apps, err := u.appRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := agent.NewRunSummary()
	summary.Processed = len(apps)

	totals := make(map[string]int)
	rejected := make(map[string]int)
	offered := make(map[string]int)

	for _, app := range apps {
		text := app.Role + " " + app.Description
		counts := u.countSkills(text)

		for skill, n := range counts {
			totals[skill] += n
			switch app.CurrentStatus {
			case trackerdomain.StatusRejected:
				rejected[skill] += n
			case trackerdomain.StatusOffer, trackerdomain.StatusAccepted:
				offered[skill] += n
			}
		}
	}

	for skill, freq := range totals {
		if freq == 0 {
			continue
		}

		existing, err := u.skillRepo.FindByUserAndSkill(userID, skill)
		if err != nil {
			log.Printf("[Skills] lookup %q: %v", skill, err)
			summary.AddError(fmt.Sprintf("skill %s: %v", skill, err))
			continue
		}

		row := existing
		if row == nil {
			row = &domain.SkillDemand{
				UserID:    userID,
				SkillName: skill,
				Category:  u.catalog.CategoryFor(skill),
			}
		}

		// Sticky: a trend flag set by any prior run is never cleared.
		row.RisingTrend = row.RisingTrend ||
			(offered[skill] > rejected[skill] && freq > trendFrequencyFloor)
		row.Frequency = freq
		row.RejectionCount = rejected[skill]
		row.OfferCount = offered[skill]

		if err := u.skillRepo.Upsert(row, capability.SkillAgent); err != nil {
			log.Printf("[Skills] upsert %q: %v", skill, err)
			summary.AddError(fmt.Sprintf("skill %s: %v", skill, err))
			continue
		}
		if existing == nil {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	return summary, nil
}

// countSkills returns word-boundary occurrence counts per skill for one
// description.
func (u *skillsUsecase) countSkills(text string) map[string]int {
	counts := make(map[string]int)

	for kw, pattern := range u.keywordPatterns {
		if n := len(pattern.FindAllString(text, -1)); n > 0 {
			counts[kw] += n
		}
	}
	for _, pattern := range u.extraPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			counts[strings.ToLower(m)]++
		}
	}
	return counts
}

func (u *skillsUsecase) GetSkillDemand(userID string) ([]*domain.SkillDemand, error) {
	return u.skillRepo.FindByUserID(userID)
}
