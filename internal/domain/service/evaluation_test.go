package service

import (
	"context"
	"testing"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCourseUnits() []entity.CourseUnit {
	return []entity.CourseUnit{
		{
			Slug:  "p1",
			Sigla: "P1",
			Name:  "Programação 1",
			Evaluations: []entity.Evaluation{
				{Date: "2024-06-10", Description: "Teste 1"},
				{Date: "2025-01-20", Description: "Exame"},
			},
		},
		{
			Slug:  "fundamentos-programacao",
			Sigla: "FP",
			Evaluations: []entity.Evaluation{
				{Date: "2024-06-05", Description: "Mini teste"},
				{Date: "31-12-2024", Description: "Data inválida"},
			},
		},
	}
}

func Test_evaluationService_Upcoming(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		buildMock func(m allMocks)
		want      []entity.UpcomingEvaluation
	}{
		{
			name: "Should list evaluations of every unit inside the window",
			days: 7,
			buildMock: func(m allMocks) {
				m.mockUCClient.EXPECT().FetchAll(gomock.Any()).Return(testCourseUnits()).Times(1)
			},
			want: []entity.UpcomingEvaluation{
				{Sigla: "P1", Date: "2024-06-10", Description: "Teste 1"},
				{Sigla: "FP", Date: "2024-06-05", Description: "Mini teste"},
			},
		},
		{
			name: "Should only include today for zero days",
			days: 0,
			buildMock: func(m allMocks) {
				m.mockUCClient.EXPECT().FetchAll(gomock.Any()).Return(testCourseUnits()).Times(1)
			},
			want: []entity.UpcomingEvaluation{
				{Sigla: "FP", Date: "2024-06-05", Description: "Mini teste"},
			},
		},
		{
			name: "Should return nothing when the API has no data",
			days: 7,
			buildMock: func(m allMocks) {
				m.mockUCClient.EXPECT().FetchAll(gomock.Any()).Return([]entity.CourseUnit{}).Times(1)
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newEvaluation(m.mockUCClient, fixedClock)
			assert.Equal(t, tt.want, s.Upcoming(context.Background(), tt.days))
		})
	}
}

func Test_evaluationService_FindUnit(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockUCClient.EXPECT().FetchAll(gomock.Any()).Return(testCourseUnits()).Times(2)

	s := newEvaluation(m.mockUCClient, fixedClock)

	unit, ok := s.FindUnit(context.Background(), "fp")
	require.True(t, ok)
	assert.Equal(t, "fundamentos-programacao", unit.Slug)

	unit, ok = s.FindUnit(context.Background(), "nope")
	assert.False(t, ok)
	assert.Nil(t, unit)
}

func Test_evaluationService_UnitEvaluations(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newEvaluation(m.mockUCClient, fixedClock)
	units := testCourseUnits()

	got := s.UnitEvaluations(&units[0], 365)
	assert.Equal(t, []entity.Evaluation{
		{Date: "2024-06-10", Description: "Teste 1"},
		{Date: "2025-01-20", Description: "Exame"},
	}, got)

	assert.Empty(t, s.UnitEvaluations(&units[0], 3))
}
