package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/papertrade/folio/internal/models"
)

type mockSnapshotService struct {
	snapshotted []string
	failFor     map[string]error
}

func (m *mockSnapshotService) CreateOrUpdateSnapshot(_ context.Context, userID string, _ *time.Time) (*models.PortfolioSnapshot, error) {
	if err, ok := m.failFor[userID]; ok {
		return nil, err
	}
	m.snapshotted = append(m.snapshotted, userID)
	return &models.PortfolioSnapshot{UserID: userID}, nil
}

type mockPositionRepo struct {
	users []string
	err   error
}

func (m *mockPositionRepo) ListByUser(context.Context, string) ([]*models.Position, error) {
	return nil, nil
}

func (m *mockPositionRepo) ListUsers(context.Context) ([]string, error) {
	return m.users, m.err
}

func TestSnapshotJobRunSnapshotsAllUsers(t *testing.T) {
	svc := &mockSnapshotService{}
	job := NewSnapshotJob(svc, &mockPositionRepo{users: []string{"u1", "u2", "u3"}}, zap.NewNop())

	job.Run()

	assert.Equal(t, []string{"u1", "u2", "u3"}, svc.snapshotted)
}

func TestSnapshotJobRunContinuesPastFailures(t *testing.T) {
	svc := &mockSnapshotService{failFor: map[string]error{"u2": errors.New("down")}}
	job := NewSnapshotJob(svc, &mockPositionRepo{users: []string{"u1", "u2", "u3"}}, zap.NewNop())

	job.Run()

	assert.Equal(t, []string{"u1", "u3"}, svc.snapshotted)
}

func TestSnapshotJobRunSkipsWhenUserListFails(t *testing.T) {
	svc := &mockSnapshotService{}
	job := NewSnapshotJob(svc, &mockPositionRepo{err: errors.New("down")}, zap.NewNop())

	job.Run()

	assert.Empty(t, svc.snapshotted)
}

func TestSnapshotJobStartRejectsBadSpec(t *testing.T) {
	job := NewSnapshotJob(&mockSnapshotService{}, &mockPositionRepo{}, zap.NewNop())
	assert.Error(t, job.Start("not a cron spec"))
}
