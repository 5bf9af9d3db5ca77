package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	"jobtrail-backend/internal/learning/domain"
	"jobtrail-backend/internal/learning/repository"
	skillsrepo "jobtrail-backend/internal/skills/repository"
	trackerdomain "jobtrail-backend/internal/tracker/domain"
	trackerrepo "jobtrail-backend/internal/tracker/repository"
	"jobtrail-backend/pkg/agent"
	"jobtrail-backend/pkg/capability"
)

// learningUsecase implements LearningUsecase
type learningUsecase struct {
	taskRepo  repository.LearningTaskRepository
	appRepo   trackerrepo.ApplicationRepository
	skillRepo skillsrepo.SkillDemandRepository
}

// NewLearningUsecase creates a new instance of learningUsecase
func NewLearningUsecase(taskRepo repository.LearningTaskRepository, appRepo trackerrepo.ApplicationRepository, skillRepo skillsrepo.SkillDemandRepository) LearningUsecase {
	return &learningUsecase{
		taskRepo:  taskRepo,
		appRepo:   appRepo,
		skillRepo: skillRepo,
	}
}

func (u *learningUsecase) RunGeneration(userID string) (*agent.RunSummary, error) {
	summary := agent.NewRunSummary()

	u.generateInterviewPrep(userID, summary)
	u.generateSkillTasks(userID, summary)

	return summary, nil
}

// generateInterviewPrep creates one high-priority prep task per application
// currently in the INTERVIEW stage that has no open prep task yet.
func (u *learningUsecase) generateInterviewPrep(userID string, summary *agent.RunSummary) {
	apps, err := u.appRepo.FindByUserID(userID)
	if err != nil {
		log.Printf("[Learning] list applications: %v", err)
		summary.AddError(fmt.Sprintf("list applications: %v", err))
		return
	}

	for _, app := range apps {
		if app.CurrentStatus != trackerdomain.StatusInterview {
			continue
		}
		summary.Processed++

		open, err := u.taskRepo.FindOpenByApplicationID(app.ID)
		if err != nil {
			summary.AddError(fmt.Sprintf("application %s: %v", app.ID, err))
			continue
		}
		if len(open) > 0 {
			continue
		}

		appID := app.ID
		task := &domain.LearningTask{
			UserID:         userID,
			ApplicationID:  &appID,
			Title:          fmt.Sprintf("Prepare for %s interview at %s", app.Role, app.Company),
			Description:    fmt.Sprintf("Review the role description and practice questions for the %s position.", app.Role),
			Priority:       domain.PriorityHigh,
			EstimatedHours: 4,
			Resources: []string{
				"Review recent projects relevant to the role",
				"Practice a mock interview",
			},
		}
		if err := u.taskRepo.Create(task, capability.LearningAgent); err != nil {
			summary.AddError(fmt.Sprintf("application %s: %v", app.ID, err))
			continue
		}
		summary.Created++
	}
}

// generateSkillTasks creates one medium-priority study task per trending
// skill without an open task.
func (u *learningUsecase) generateSkillTasks(userID string, summary *agent.RunSummary) {
	rising, err := u.skillRepo.FindRisingByUserID(userID)
	if err != nil {
		log.Printf("[Learning] list trending skills: %v", err)
		summary.AddError(fmt.Sprintf("list trending skills: %v", err))
		return
	}

	for _, skill := range rising {
		summary.Processed++

		open, err := u.taskRepo.FindOpenBySkillName(userID, skill.SkillName)
		if err != nil {
			summary.AddError(fmt.Sprintf("skill %s: %v", skill.SkillName, err))
			continue
		}
		if len(open) > 0 {
			continue
		}

		task := &domain.LearningTask{
			UserID:         userID,
			SkillName:      skill.SkillName,
			Title:          fmt.Sprintf("Study %s", skill.SkillName),
			Description:    fmt.Sprintf("%s shows up in %d of your tracked postings and is trending in offers.", skill.SkillName, skill.Frequency),
			Priority:       domain.PriorityMedium,
			EstimatedHours: 6,
			Resources: []string{
				fmt.Sprintf("Official %s documentation", skill.SkillName),
				fmt.Sprintf("Build a small project using %s", skill.SkillName),
			},
		}
		if err := u.taskRepo.Create(task, capability.LearningAgent); err != nil {
			summary.AddError(fmt.Sprintf("skill %s: %v", skill.SkillName, err))
			continue
		}
		summary.Created++
	}
}

func (u *learningUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.LearningTask, error) {
	task := &domain.LearningTask{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       parsePriority(req.Priority),
		EstimatedHours: req.EstimatedHours,
		Resources:      req.Resources,
	}
	if err := u.taskRepo.Create(task, capability.User); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *learningUsecase) GetUserTasks(userID string, completed *bool, limit, offset int) ([]*domain.LearningTask, int64, error) {
	return u.taskRepo.FindByUserID(userID, completed, limit, offset)
}

func (u *learningUsecase) GetTaskByID(userID, taskID string) (*domain.LearningTask, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	if task.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return task, nil
}

func (u *learningUsecase) CompleteTask(userID, taskID string) (*domain.LearningTask, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now
	if err := u.taskRepo.Update(task, capability.User); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *learningUsecase) DeleteTask(userID, taskID string) error {
	if _, err := u.GetTaskByID(userID, taskID); err != nil {
		return err
	}
	return u.taskRepo.Delete(taskID, capability.User)
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
