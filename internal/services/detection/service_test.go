package detection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/footslip/internal/common/schedule"
	"github.com/KirkDiggler/footslip/internal/models"
	analysisRepo "github.com/KirkDiggler/footslip/internal/repositories/analysis"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/detection/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type runResult struct {
	output *detection.RunAnalysisOutput
	err    error
}

type DetectionServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	repo             analysisRepo.Repository
	clock            *clockwork.FakeClock
	tasks            *schedule.Registry
	detectionService detection.Service
	ctx              context.Context

	// Test data
	testSessionID string
	progress      chan models.Checkpoint
}

func (s *DetectionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = analysisRepo.NewMemory()
	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC))
	s.tasks = schedule.NewRegistry()
	s.ctx = context.Background()
	s.testSessionID = "test-channel-id"
	s.progress = make(chan models.Checkpoint, len(detection.Checkpoints))

	svc, err := detection.New(&detection.Config{
		Repository: s.repo,
		Clock:      s.clock,
		Tasks:      s.tasks,
	})
	s.Require().NoError(err)
	s.detectionService = svc
}

func (s *DetectionServiceTestSuite) TearDownTest() {
	s.tasks.Close()
	s.mockCtrl.Finish()
}

func TestDetectionServiceSuite(t *testing.T) {
	suite.Run(t, new(DetectionServiceTestSuite))
}

func (s *DetectionServiceTestSuite) onProgress(checkpoint models.Checkpoint) {
	s.progress <- checkpoint
}

func (s *DetectionServiceTestSuite) selectVideo() {
	output, err := s.detectionService.SelectFile(s.ctx, &detection.SelectFileInput{
		SessionID:   s.testSessionID,
		Name:        "derby.mp4",
		ContentType: "video/mp4",
		Size:        52428800,
	})
	s.Require().NoError(err)
	s.Require().True(output.Accepted)
}

// step waits for the next pending timer and fires it
func (s *DetectionServiceTestSuite) step(d time.Duration) {
	ctx, cancel := context.WithTimeout(s.ctx, time.Second)
	defer cancel()
	s.Require().NoError(s.clock.BlockUntilContext(ctx, 1))
	s.clock.Advance(d)
}

func (s *DetectionServiceTestSuite) nextCheckpoint() models.Checkpoint {
	select {
	case checkpoint := <-s.progress:
		return checkpoint
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for checkpoint")
		return models.Checkpoint{}
	}
}

func (s *DetectionServiceTestSuite) analysis() *models.Analysis {
	output, err := s.detectionService.GetAnalysis(s.ctx, &detection.GetAnalysisInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	return output.Analysis
}

func (s *DetectionServiceTestSuite) runInBackground(ctx context.Context) <-chan runResult {
	done := make(chan runResult, 1)
	go func() {
		output, err := s.detectionService.RunAnalysis(ctx, &detection.RunAnalysisInput{
			SessionID:  s.testSessionID,
			OnProgress: s.onProgress,
		})
		done <- runResult{output: output, err: err}
	}()
	return done
}

func (s *DetectionServiceTestSuite) TestNew_Validation() {
	_, err := detection.New(nil)
	s.ErrorIs(err, detection.ErrNilConfig)

	_, err = detection.New(&detection.Config{Clock: s.clock, Tasks: s.tasks})
	s.ErrorIs(err, detection.ErrNilRepository)

	_, err = detection.New(&detection.Config{Repository: s.repo, Tasks: s.tasks})
	s.ErrorIs(err, detection.ErrNilClock)

	_, err = detection.New(&detection.Config{Repository: s.repo, Clock: s.clock})
	s.ErrorIs(err, detection.ErrNilTasks)
}

func (s *DetectionServiceTestSuite) TestGetAnalysis_Idle() {
	analysis := s.analysis()
	s.Equal(models.AnalysisStatusIdle, analysis.Status)
	s.Nil(analysis.File)
	s.Equal(0, analysis.Progress)
}

func (s *DetectionServiceTestSuite) TestSelectFile_AcceptsVideo() {
	s.selectVideo()

	analysis := s.analysis()
	s.Require().NotNil(analysis.File)
	s.Equal("derby.mp4", analysis.File.Name)
	s.Equal("video/mp4", analysis.File.ContentType)
	s.Equal(int64(52428800), analysis.File.Size)
	s.Equal(models.AnalysisStatusIdle, analysis.Status)
}

func (s *DetectionServiceTestSuite) TestSelectFile_RejectsNonVideo() {
	for _, contentType := range []string{"image/png", "application/pdf", "", "audio/mpeg"} {
		output, err := s.detectionService.SelectFile(s.ctx, &detection.SelectFileInput{
			SessionID:   s.testSessionID,
			Name:        "lineup.png",
			ContentType: contentType,
			Size:        1024,
		})
		s.Require().NoError(err)
		s.False(output.Accepted)
		s.Nil(output.Analysis.File)
	}
}

func (s *DetectionServiceTestSuite) TestSelectFile_RejectedFileKeepsPrevious() {
	s.selectVideo()

	output, err := s.detectionService.SelectFile(s.ctx, &detection.SelectFileInput{
		SessionID:   s.testSessionID,
		Name:        "notes.txt",
		ContentType: "text/plain",
	})
	s.Require().NoError(err)
	s.False(output.Accepted)
	s.Equal("derby.mp4", s.analysis().File.Name)
}

func (s *DetectionServiceTestSuite) TestRunAnalysis_NoFile() {
	_, err := s.detectionService.RunAnalysis(s.ctx, &detection.RunAnalysisInput{SessionID: s.testSessionID})
	s.ErrorIs(err, detection.ErrNoFile)
}

func (s *DetectionServiceTestSuite) TestRunAnalysis_FullSequence() {
	s.selectVideo()
	done := s.runInBackground(s.ctx)

	for i, expected := range detection.Checkpoints {
		s.step(detection.DefaultStepDelay)
		got := s.nextCheckpoint()
		s.Equal(expected, got, "checkpoint %d", i)
	}

	analysis := s.analysis()
	s.Equal(models.AnalysisStatusComplete, analysis.Status)
	s.Equal(100, analysis.Progress)
	s.Equal("Analysis complete!", analysis.Step)
	s.Nil(analysis.Result, "result is handed off after the delay")

	s.step(detection.DefaultHandoffDelay)

	var res runResult
	select {
	case res = <-done:
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for analysis")
	}
	s.Require().NoError(res.err)

	result := res.output.Result
	s.Equal(10, result.TotalFalls)
	s.Equal(5400, result.MatchDuration)
	s.Require().Len(result.Players, 5)
	s.Equal("Player #10", result.Players[0].Name)
	s.Equal(3, result.Players[0].Falls)
	s.Equal("Player #9", result.Players[4].Name)
	s.Equal(4, result.Players[4].Falls)

	s.Require().NotNil(s.analysis().Result)
	s.Equal(10, s.analysis().Result.TotalFalls)
}

func (s *DetectionServiceTestSuite) TestRunAnalysis_Cancelled() {
	s.selectVideo()
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	done := s.runInBackground(ctx)

	s.step(detection.DefaultStepDelay)
	s.Equal(10, s.nextCheckpoint().Progress)
	s.step(detection.DefaultStepDelay)
	s.Equal(25, s.nextCheckpoint().Progress)

	cancel()
	res := <-done
	s.ErrorIs(res.err, context.Canceled)

	analysis := s.analysis()
	s.Equal(models.AnalysisStatusIdle, analysis.Status)
	s.Equal(0, analysis.Progress)
	s.Require().NotNil(analysis.File, "the selected file is kept")
}

func (s *DetectionServiceTestSuite) TestRunAnalysis_DetectorError() {
	mockDetector := mocks.NewMockDetector(s.mockCtrl)
	svc, err := detection.New(&detection.Config{
		Repository:   s.repo,
		Clock:        s.clock,
		Tasks:        s.tasks,
		Detector:     mockDetector,
		StepDelay:    time.Millisecond,
		HandoffDelay: -1,
	})
	s.Require().NoError(err)
	s.detectionService = svc
	s.selectVideo()

	mockDetector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, errors.New("model not loaded"))

	done := s.runInBackground(s.ctx)
	for range detection.Checkpoints {
		s.step(time.Millisecond)
	}

	res := <-done
	s.ErrorContains(res.err, "model not loaded")
	s.Equal(models.AnalysisStatusIdle, s.analysis().Status)
}

func (s *DetectionServiceTestSuite) TestStartAnalysis_FinishesOnce() {
	s.selectVideo()
	finished := make(chan *models.SessionResult, 2)

	output, err := s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{
		SessionID:  s.testSessionID,
		OnProgress: s.onProgress,
		OnFinish: func(result *models.SessionResult, err error) {
			s.NoError(err)
			finished <- result
		},
	})
	s.Require().NoError(err)
	s.Equal(models.AnalysisStatusProcessing, output.Analysis.Status)

	for range detection.Checkpoints {
		s.step(detection.DefaultStepDelay)
		s.nextCheckpoint()
	}
	s.step(detection.DefaultHandoffDelay)

	select {
	case result := <-finished:
		s.Equal(10, result.TotalFalls)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for finish")
	}

	s.Eventually(func() bool {
		return !s.tasks.Running("analysis:" + s.testSessionID)
	}, time.Second, 5*time.Millisecond)
	s.Empty(finished)
}

func (s *DetectionServiceTestSuite) TestStartAnalysis_AlreadyRunning() {
	s.selectVideo()

	_, err := s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	_, err = s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{SessionID: s.testSessionID})
	s.ErrorIs(err, detection.ErrAnalysisInProgress)

	_, err = s.detectionService.SelectFile(s.ctx, &detection.SelectFileInput{
		SessionID:   s.testSessionID,
		Name:        "other.mov",
		ContentType: "video/quicktime",
	})
	s.ErrorIs(err, detection.ErrAnalysisInProgress)
}

func (s *DetectionServiceTestSuite) TestDiscardSession_CancelsRun() {
	s.selectVideo()
	finished := make(chan error, 1)

	_, err := s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{
		SessionID:  s.testSessionID,
		OnProgress: s.onProgress,
		OnFinish: func(result *models.SessionResult, err error) {
			s.Nil(result)
			finished <- err
		},
	})
	s.Require().NoError(err)

	s.step(detection.DefaultStepDelay)
	s.nextCheckpoint()

	_, err = s.detectionService.DiscardSession(s.ctx, &detection.DiscardSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	select {
	case err := <-finished:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for finish")
	}

	_, err = s.repo.GetAnalysis(s.ctx, &analysisRepo.GetAnalysisInput{SessionID: s.testSessionID})
	s.ErrorIs(err, analysisRepo.ErrAnalysisNotFound)
}

func (s *DetectionServiceTestSuite) TestStartAnalysis_AfterShutdown() {
	s.selectVideo()
	s.tasks.Close()

	_, err := s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{SessionID: s.testSessionID})
	s.ErrorIs(err, detection.ErrShuttingDown)
	s.Equal(models.AnalysisStatusIdle, s.analysis().Status)
}

func (s *DetectionServiceTestSuite) TestMockDetector_IgnoresFile() {
	detector := detection.NewMockDetector()

	first, err := detector.Detect(s.ctx, &models.VideoFile{Name: "a.mp4", ContentType: "video/mp4"})
	s.Require().NoError(err)
	second, err := detector.Detect(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(10, first.TotalFalls)
	s.Equal(detection.MockMatchDuration, first.MatchDuration)
	for i, p := range first.Players {
		s.Equal(string(rune('1'+i)), p.ID)
	}
}

func (s *DetectionServiceTestSuite) TestStartAnalysis_RestartDuringHandoff() {
	s.selectVideo()
	firstDone := make(chan error, 1)

	_, err := s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{
		SessionID:  s.testSessionID,
		OnProgress: s.onProgress,
		OnFinish: func(result *models.SessionResult, err error) {
			s.Nil(result)
			firstDone <- err
		},
	})
	s.Require().NoError(err)

	for range detection.Checkpoints {
		s.step(detection.DefaultStepDelay)
		s.nextCheckpoint()
	}
	s.Equal(models.AnalysisStatusComplete, s.analysis().Status)

	secondDone := make(chan *models.SessionResult, 1)
	output, err := s.detectionService.StartAnalysis(s.ctx, &detection.StartAnalysisInput{
		SessionID:  s.testSessionID,
		OnProgress: s.onProgress,
		OnFinish: func(result *models.SessionResult, err error) {
			s.NoError(err)
			secondDone <- result
		},
	})
	s.Require().NoError(err)
	s.Equal(models.AnalysisStatusProcessing, output.Analysis.Status)

	select {
	case err := <-firstDone:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for the replaced run")
	}

	analysis := s.analysis()
	s.Equal(models.AnalysisStatusProcessing, analysis.Status)
	s.Equal(0, analysis.Progress)
	s.Require().NotNil(analysis.File)

	for range detection.Checkpoints {
		s.step(detection.DefaultStepDelay)
		s.nextCheckpoint()
	}
	s.step(detection.DefaultHandoffDelay)

	select {
	case result := <-secondDone:
		s.Equal(10, result.TotalFalls)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for the second run")
	}
	s.Require().NotNil(s.analysis().Result)
}

func (s *DetectionServiceTestSuite) TestRunAnalysis_CancelledDuringDetect() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	mockDetector := mocks.NewMockDetector(s.mockCtrl)
	svc, err := detection.New(&detection.Config{
		Repository:   s.repo,
		Clock:        s.clock,
		Tasks:        s.tasks,
		Detector:     mockDetector,
		StepDelay:    time.Millisecond,
		HandoffDelay: -1,
	})
	s.Require().NoError(err)
	s.detectionService = svc
	s.selectVideo()

	mockDetector.EXPECT().
		Detect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.VideoFile) (*models.SessionResult, error) {
			cancel()
			return detection.NewMockDetector().Detect(s.ctx, nil)
		})

	done := s.runInBackground(ctx)
	for range detection.Checkpoints {
		s.step(time.Millisecond)
	}

	res := <-done
	s.ErrorIs(res.err, context.Canceled)

	analysis := s.analysis()
	s.Equal(models.AnalysisStatusIdle, analysis.Status)
	s.Equal(0, analysis.Progress)
	s.Nil(analysis.Result)
	s.Require().NotNil(analysis.File)
}
