package engine

import (
	"time"

	"github.com/genricoloni/mediactl/internal/domain"
	"github.com/genricoloni/mediactl/internal/domain/mocks"
	"go.uber.org/mock/gomock"
)

type stubConfig struct{}

func (stubConfig) GetRuntimeDir() string              { return "/run/user/1000" }
func (stubConfig) GetIconDir() string                 { return "/icons" }
func (stubConfig) GetAppName() string                 { return "media-control" }
func (stubConfig) GetTransportTimeout() time.Duration { return 1500 * time.Millisecond }
func (stubConfig) GetCycleTimeout() time.Duration     { return 6000 * time.Millisecond }
func (stubConfig) GetLogLevel() string                { return "warn" }
func (stubConfig) GetLogFile() string                 { return "" }
func (stubConfig) GetLogMaxSizeMB() int               { return 1 }
func (stubConfig) GetLogMaxBackups() int              { return 1 }

// newMockPlayer returns a player mock whose identity accessors may be called any number of times
func newMockPlayer(ctrl *gomock.Controller, id, name string) *mocks.MockPlayer {
	p := mocks.NewMockPlayer(ctrl)
	p.EXPECT().StableID().Return(id).AnyTimes()
	p.EXPECT().DisplayName().Return(name).AnyTimes()
	return p
}

func roster(players ...*mocks.MockPlayer) []domain.Player {
	out := make([]domain.Player, len(players))
	for i, p := range players {
		out[i] = p
	}
	return out
}
