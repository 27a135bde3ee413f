package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*entity.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *entity.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domainerror.ErrProjectNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) FindAll(_ context.Context) ([]*entity.Project, error) {
	result := make([]*entity.Project, 0, len(r.projects))
	for _, p := range r.projects {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.projects, id)
	return nil
}

func TestCreateProject(t *testing.T) {
	repo := newFakeProjectRepo()
	uc := NewCreateProjectUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateProjectInput{
		Name:        "كفالة أيتام",
		Description: "كفالة شهرية",
		Budget:      decimal.NewFromInt(1200),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.projects[output.Project.ID]; !ok {
		t.Error("expected project persisted")
	}
}

func TestCreateProjectRejectsBlankName(t *testing.T) {
	uc := NewCreateProjectUseCase(newFakeProjectRepo())

	_, err := uc.Execute(context.Background(), CreateProjectInput{Name: "   "})
	if !errors.Is(err, domainerror.ErrEmptyProjectName) {
		t.Fatalf("expected ErrEmptyProjectName, got %v", err)
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	uc := NewDeleteProjectUseCase(newFakeProjectRepo())

	err := uc.Execute(context.Background(), DeleteProjectInput{ID: uuid.New()})
	if !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
