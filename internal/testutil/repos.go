// Package testutil provides hand-rolled repository fakes for usecase tests.
// Each fake exposes function fields so a test can stub exactly the calls it
// cares about; unstubbed calls fail loudly.
package testutil

import (
	"context"
	"fmt"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type UserRepo struct {
	ExistsFn        func(ctx context.Context, id int64) (bool, error)
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetByIDsFn      func(ctx context.Context, ids []int64) ([]domain.User, error)
	ListFn          func(ctx context.Context) ([]domain.User, error)
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (m *UserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFn == nil {
		return false, errUnexpected("UserRepo.Exists")
	}
	return m.ExistsFn(ctx, id)
}

func (m *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn == nil {
		return nil, errUnexpected("UserRepo.GetByID")
	}
	return m.GetByIDFn(ctx, id)
}

func (m *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn == nil {
		return nil, errUnexpected("UserRepo.GetByUsername")
	}
	return m.GetByUsernameFn(ctx, username)
}

func (m *UserRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if m.GetByIDsFn == nil {
		return nil, errUnexpected("UserRepo.GetByIDs")
	}
	return m.GetByIDsFn(ctx, ids)
}

func (m *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn == nil {
		return nil, errUnexpected("UserRepo.List")
	}
	return m.ListFn(ctx)
}

type CallRepo struct {
	ExistsFn       func(ctx context.Context, id int64) (bool, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Call, error)
	ListFn         func(ctx context.Context, filter repository.CallFilter) ([]domain.Call, error)
	CreateFn       func(ctx context.Context, call *domain.Call) (*domain.Call, error)
	UpdateStatusFn func(ctx context.Context, id int64, status string) error
}

var _ repository.CallRepository = (*CallRepo)(nil)

func (m *CallRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFn == nil {
		return false, errUnexpected("CallRepo.Exists")
	}
	return m.ExistsFn(ctx, id)
}

func (m *CallRepo) GetByID(ctx context.Context, id int64) (*domain.Call, error) {
	if m.GetByIDFn == nil {
		return nil, errUnexpected("CallRepo.GetByID")
	}
	return m.GetByIDFn(ctx, id)
}

func (m *CallRepo) List(ctx context.Context, filter repository.CallFilter) ([]domain.Call, error) {
	if m.ListFn == nil {
		return nil, errUnexpected("CallRepo.List")
	}
	return m.ListFn(ctx, filter)
}

func (m *CallRepo) Create(ctx context.Context, call *domain.Call) (*domain.Call, error) {
	if m.CreateFn == nil {
		return nil, errUnexpected("CallRepo.Create")
	}
	return m.CreateFn(ctx, call)
}

func (m *CallRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.UpdateStatusFn == nil {
		return errUnexpected("CallRepo.UpdateStatus")
	}
	return m.UpdateStatusFn(ctx, id, status)
}

type ChallengeRepo struct {
	GetByIDFn               func(ctx context.Context, id int64) (*domain.Challenge, error)
	PendingReceiversFn      func(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error)
	CreateBatchFn           func(ctx context.Context, challenges []domain.Challenge) error
	RespondFn               func(ctx context.Context, challenge *domain.Challenge, fork *domain.Call) error
	ListPendingByReceiverFn func(ctx context.Context, receiverID int64) ([]domain.ChallengeNotification, error)
}

var _ repository.ChallengeRepository = (*ChallengeRepo)(nil)

func (m *ChallengeRepo) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	if m.GetByIDFn == nil {
		return nil, errUnexpected("ChallengeRepo.GetByID")
	}
	return m.GetByIDFn(ctx, id)
}

func (m *ChallengeRepo) PendingReceivers(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error) {
	if m.PendingReceiversFn == nil {
		return nil, errUnexpected("ChallengeRepo.PendingReceivers")
	}
	return m.PendingReceiversFn(ctx, senderID, callID, receiverIDs)
}

func (m *ChallengeRepo) CreateBatch(ctx context.Context, challenges []domain.Challenge) error {
	if m.CreateBatchFn == nil {
		return errUnexpected("ChallengeRepo.CreateBatch")
	}
	return m.CreateBatchFn(ctx, challenges)
}

func (m *ChallengeRepo) Respond(ctx context.Context, challenge *domain.Challenge, fork *domain.Call) error {
	if m.RespondFn == nil {
		return errUnexpected("ChallengeRepo.Respond")
	}
	return m.RespondFn(ctx, challenge, fork)
}

func (m *ChallengeRepo) ListPendingByReceiver(ctx context.Context, receiverID int64) ([]domain.ChallengeNotification, error) {
	if m.ListPendingByReceiverFn == nil {
		return nil, errUnexpected("ChallengeRepo.ListPendingByReceiver")
	}
	return m.ListPendingByReceiverFn(ctx, receiverID)
}

type FriendshipRepo struct {
	ConfirmedFriendIDsFn func(ctx context.Context, userID int64) ([]int64, error)
}

var _ repository.FriendshipRepository = (*FriendshipRepo)(nil)

func (m *FriendshipRepo) ConfirmedFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.ConfirmedFriendIDsFn == nil {
		return nil, errUnexpected("FriendshipRepo.ConfirmedFriendIDs")
	}
	return m.ConfirmedFriendIDsFn(ctx, userID)
}

type GoalRepo struct {
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Goal, error)
	ListByUserFn func(ctx context.Context, userID int64) ([]domain.Goal, error)
	CreateFn     func(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	UpdateFn     func(ctx context.Context, goal *domain.Goal) error
	DeleteFn     func(ctx context.Context, id int64) error
}

var _ repository.GoalRepository = (*GoalRepo)(nil)

func (m *GoalRepo) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	if m.GetByIDFn == nil {
		return nil, errUnexpected("GoalRepo.GetByID")
	}
	return m.GetByIDFn(ctx, id)
}

func (m *GoalRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	if m.ListByUserFn == nil {
		return nil, errUnexpected("GoalRepo.ListByUser")
	}
	return m.ListByUserFn(ctx, userID)
}

func (m *GoalRepo) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if m.CreateFn == nil {
		return nil, errUnexpected("GoalRepo.Create")
	}
	return m.CreateFn(ctx, goal)
}

func (m *GoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	if m.UpdateFn == nil {
		return errUnexpected("GoalRepo.Update")
	}
	return m.UpdateFn(ctx, goal)
}

func (m *GoalRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn == nil {
		return errUnexpected("GoalRepo.Delete")
	}
	return m.DeleteFn(ctx, id)
}

type StepRepo struct {
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Step, error)
	ListByGoalFn func(ctx context.Context, goalID int64) ([]domain.Step, error)
	CreateFn     func(ctx context.Context, step *domain.Step) (*domain.Step, error)
	UpdateFn     func(ctx context.Context, step *domain.Step) error
	DeleteFn     func(ctx context.Context, id int64) error
}

var _ repository.StepRepository = (*StepRepo)(nil)

func (m *StepRepo) GetByID(ctx context.Context, id int64) (*domain.Step, error) {
	if m.GetByIDFn == nil {
		return nil, errUnexpected("StepRepo.GetByID")
	}
	return m.GetByIDFn(ctx, id)
}

func (m *StepRepo) ListByGoal(ctx context.Context, goalID int64) ([]domain.Step, error) {
	if m.ListByGoalFn == nil {
		return nil, errUnexpected("StepRepo.ListByGoal")
	}
	return m.ListByGoalFn(ctx, goalID)
}

func (m *StepRepo) Create(ctx context.Context, step *domain.Step) (*domain.Step, error) {
	if m.CreateFn == nil {
		return nil, errUnexpected("StepRepo.Create")
	}
	return m.CreateFn(ctx, step)
}

func (m *StepRepo) Update(ctx context.Context, step *domain.Step) error {
	if m.UpdateFn == nil {
		return errUnexpected("StepRepo.Update")
	}
	return m.UpdateFn(ctx, step)
}

func (m *StepRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn == nil {
		return errUnexpected("StepRepo.Delete")
	}
	return m.DeleteFn(ctx, id)
}

type ActivityRepo struct {
	ListFn func(ctx context.Context) ([]domain.Activity, error)
}

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

func (m *ActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	if m.ListFn == nil {
		return nil, errUnexpected("ActivityRepo.List")
	}
	return m.ListFn(ctx)
}

type SessionRepo struct {
	GetFn    func(ctx context.Context, id string) (*domain.Session, error)
	SaveFn   func(ctx context.Context, session *domain.Session) error
	DeleteFn func(ctx context.Context, id string) error
	ExtendFn func(ctx context.Context, id string, ttlSeconds int) error
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

func (m *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	if m.GetFn == nil {
		return nil, errUnexpected("SessionRepo.Get")
	}
	return m.GetFn(ctx, id)
}

func (m *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveFn == nil {
		return errUnexpected("SessionRepo.Save")
	}
	return m.SaveFn(ctx, session)
}

func (m *SessionRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errUnexpected("SessionRepo.Delete")
	}
	return m.DeleteFn(ctx, id)
}

func (m *SessionRepo) Extend(ctx context.Context, id string, ttlSeconds int) error {
	if m.ExtendFn == nil {
		return errUnexpected("SessionRepo.Extend")
	}
	return m.ExtendFn(ctx, id, ttlSeconds)
}

func errUnexpected(method string) error {
	return fmt.Errorf("testutil: unexpected call to %s", method)
}
