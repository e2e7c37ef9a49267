package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"service_alerts/internal/checksum"
	"service_alerts/internal/config"
	"service_alerts/internal/domain"
	"service_alerts/internal/footprint"
	"service_alerts/internal/llm"
	"service_alerts/internal/records"
	"service_alerts/internal/service/mocks"
	"service_alerts/internal/testutil"
)

const (
	augmented = "service-alerts.augmented-service-alerts"
	salt      = "test-salt"
)

type AugmentServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	datasets   *mocks.MockDatasets
	drafter    *mocks.MockDrafter
	footprints *mocks.MockFootprints
	publisher  *mocks.MockPublisher

	ctx context.Context
}

func (s *AugmentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.datasets = mocks.NewMockDatasets(s.ctrl)
	s.drafter = mocks.NewMockDrafter(s.ctrl)
	s.footprints = mocks.NewMockFootprints(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
}

func (s *AugmentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAugmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AugmentServiceTestSuite))
}

func (s *AugmentServiceTestSuite) newService(cache config.CacheConfig) *AugmentService {
	return NewAugmentService(
		s.datasets,
		s.drafter,
		func() Footprints { return s.footprints },
		s.publisher,
		nil,
		testutil.Logger(),
		config.DatasetsConfig{Sanitised: sanitised, Augmented: augmented},
		cache,
		config.PipelineConfig{DraftLimit: 10, PostLimit: 280},
	)
}

func (s *AugmentServiceTestSuite) cachedService() *AugmentService {
	return s.newService(config.CacheConfig{Salt: salt, DataSizeLimit: 20})
}

func cached(a domain.Alert) domain.Alert {
	a.InputChecksum = checksum.Sum(a.Values(), salt)
	return a
}

func (s *AugmentServiceTestSuite) draftByID() {
	s.drafter.EXPECT().Draft(s.ctx, gomock.Any(), 280).DoAndReturn(
		func(_ context.Context, a domain.Alert, _ int) (string, error) {
			return "Post " + a.ID, nil
		},
	).AnyTimes()
}

func (s *AugmentServiceTestSuite) expectFootprints(summary footprint.Summary) {
	s.footprints.EXPECT().Apply(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, alerts []domain.Alert) (footprint.Summary, error) {
			for i := range alerts {
				alerts[i].GeospatialFootprint = testutil.Ptr("POINT (18.47 -33.96)")
			}
			return summary, nil
		},
	)
	s.footprints.EXPECT().InferSuburbs(s.ctx, gomock.Any()).Return(nil)
	s.footprints.EXPECT().InferWards(s.ctx, gomock.Any()).Return(nil)
}

func (s *AugmentServiceTestSuite) TestRun_FirstRun() {
	input := []domain.Alert{testutil.Alert("1", 1), testutil.Alert("2", 3), testutil.Alert("3", 2)}

	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: input}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(nil, records.ErrDatasetNotFound)
	s.draftByID()
	s.expectFootprints(footprint.Summary{Resolved: 2, Fallback: 1})

	var saved []domain.Alert
	s.datasets.EXPECT().Save(s.ctx, augmented, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, alerts []domain.Alert) error {
			saved = alerts
			return nil
		},
	)
	s.publisher.EXPECT().Publish(s.ctx, augmented, gomock.Len(3)).Return(3, nil)

	stats, err := s.cachedService().Run(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"2", "3", "1"}, alertIDs(saved), "newest first")
	for _, a := range saved {
		s.Require().NotNil(a.TweetText)
		s.Equal("Post "+a.ID, *a.TweetText)
		s.Require().NotNil(a.TootText)
		s.Equal("Post "+a.ID+"\n#WaterAndSanitation #CapeTown", *a.TootText)
		s.NotNil(a.GeospatialFootprint)
		s.NotEmpty(a.InputChecksum)
	}
	s.Equal(3, stats.New)
	s.Equal(0, stats.Backfilled)
	s.Equal(2, stats.Resolved)
	s.Equal(1, stats.Fallback)
	s.Equal(3, stats.Published)
	s.True(stats.Persisted)
}

func (s *AugmentServiceTestSuite) TestRun_KeepsNewestWithinDraftLimit() {
	var input []domain.Alert
	for i := 0; i < 15; i++ {
		input = append(input, testutil.Alert(string(rune('a'+i)), i))
	}

	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: input}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(nil, records.ErrDatasetNotFound)
	s.draftByID()
	s.expectFootprints(footprint.Summary{})
	s.datasets.EXPECT().Save(s.ctx, augmented, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, alerts []domain.Alert) error {
			s.Len(alerts, 10)
			s.Equal("o", alerts[0].ID)
			s.Equal("f", alerts[9].ID)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(s.ctx, augmented, gomock.Len(10)).Return(10, nil)

	stats, err := s.cachedService().Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(15, stats.Fetched)
	s.Equal(10, stats.New)
}

func (s *AugmentServiceTestSuite) TestRun_NothingChanged() {
	done := testutil.Alert("1", 1)
	row := cached(done)
	row.TweetText = testutil.Ptr("drafted")
	row.TootText = testutil.Ptr("drafted\n#WaterAndSanitation #CapeTown")

	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: []domain.Alert{done}}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(&domain.Dataset{Alerts: []domain.Alert{row}}, nil)
	s.expectFootprints(footprint.Summary{})

	stats, err := s.cachedService().Run(s.ctx)

	s.Require().NoError(err)
	s.Zero(stats.New)
	s.Equal(1, stats.Cached)
	s.False(stats.Persisted)
	s.Zero(stats.Published)
}

func (s *AugmentServiceTestSuite) TestRun_BackfillsUndraftedCache() {
	pending := testutil.Alert("1", 1)
	fresh := testutil.Alert("2", 2)

	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: []domain.Alert{pending, fresh}}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(&domain.Dataset{Alerts: []domain.Alert{cached(pending)}}, nil)
	s.draftByID()
	s.expectFootprints(footprint.Summary{})
	s.datasets.EXPECT().Save(s.ctx, augmented, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, alerts []domain.Alert) error {
			s.Equal([]string{"2", "1"}, alertIDs(alerts))
			for _, a := range alerts {
				s.NotNil(a.TweetText)
				s.NotNil(a.TootText)
			}
			return nil
		},
	)
	s.publisher.EXPECT().Publish(s.ctx, augmented, gomock.Len(2)).Return(2, nil)

	stats, err := s.cachedService().Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.New)
	s.Equal(1, stats.Backfilled)
	s.Zero(stats.Cached)
}

func (s *AugmentServiceTestSuite) TestRun_DraftFailureLeavesPostEmpty() {
	input := []domain.Alert{testutil.Alert("1", 1), testutil.Alert("2", 2)}

	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: input}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(nil, records.ErrDatasetNotFound)
	s.drafter.EXPECT().Draft(s.ctx, gomock.Any(), 280).DoAndReturn(
		func(_ context.Context, a domain.Alert, _ int) (string, error) {
			if a.ID == "2" {
				return "", llm.ErrDegenerate
			}
			return "Post " + a.ID, nil
		},
	).Times(2)
	s.expectFootprints(footprint.Summary{})
	s.datasets.EXPECT().Save(s.ctx, augmented, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, alerts []domain.Alert) error {
			s.Equal("2", alerts[0].ID)
			s.Nil(alerts[0].TweetText)
			s.Nil(alerts[0].TootText)
			s.NotNil(alerts[1].TootText)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(s.ctx, augmented, gomock.Any()).Return(2, nil)

	stats, err := s.cachedService().Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
}

func (s *AugmentServiceTestSuite) TestRun_FootprintErrorAborts() {
	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: []domain.Alert{testutil.Alert("1", 1)}}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(nil, records.ErrDatasetNotFound)
	s.draftByID()
	s.footprints.EXPECT().Apply(s.ctx, gomock.Any()).Return(footprint.Summary{}, errors.New("load layer Wards: layer not found"))

	_, err := s.cachedService().Run(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "apply footprints")
}

func (s *AugmentServiceTestSuite) TestRun_PublishFailureIsCounted() {
	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: []domain.Alert{testutil.Alert("1", 1)}}, nil)
	s.datasets.EXPECT().Load(s.ctx, augmented).Return(nil, records.ErrDatasetNotFound)
	s.draftByID()
	s.expectFootprints(footprint.Summary{})
	s.datasets.EXPECT().Save(s.ctx, augmented, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, augmented, gomock.Any()).Return(0, errors.New("channel closed"))

	stats, err := s.cachedService().Run(s.ctx)

	s.Require().NoError(err)
	s.True(stats.Persisted)
	s.Zero(stats.Published)
	s.Equal(1, stats.Errors)
}

func (s *AugmentServiceTestSuite) TestRun_CacheDisabled() {
	input := []domain.Alert{testutil.Alert("1", 1)}

	s.datasets.EXPECT().Load(s.ctx, sanitised).Return(&domain.Dataset{Alerts: input}, nil)
	s.draftByID()
	s.expectFootprints(footprint.Summary{})
	s.datasets.EXPECT().Save(s.ctx, augmented, gomock.Len(1)).Return(nil)
	s.publisher.EXPECT().Publish(s.ctx, augmented, gomock.Len(1)).Return(1, nil)

	stats, err := s.newService(config.CacheConfig{Disabled: true, Salt: salt}).Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.New)
}

func (s *AugmentServiceTestSuite) TestRun_CancelledWhileDrafting() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.datasets.EXPECT().Load(ctx, sanitised).Return(&domain.Dataset{Alerts: []domain.Alert{testutil.Alert("1", 1)}}, nil)
	s.datasets.EXPECT().Load(ctx, augmented).Return(nil, records.ErrDatasetNotFound)
	s.drafter.EXPECT().Draft(ctx, gomock.Any(), 280).DoAndReturn(
		func(ctx context.Context, _ domain.Alert, _ int) (string, error) {
			cancel()
			return "", ctx.Err()
		},
	)

	_, err := s.cachedService().Run(ctx)

	s.ErrorIs(err, context.Canceled)
}

func TestToot(t *testing.T) {
	a := testutil.Alert("1", 1)
	if Toot(a) != nil {
		t.Fatal("expected no toot without a tweet")
	}

	a.TweetText = testutil.Ptr("Burst pipe on Main Road")
	if got := *Toot(a); got != "Burst pipe on Main Road\n#WaterAndSanitation #CapeTown" {
		t.Errorf("unexpected toot %q", got)
	}

	a.ServiceArea = "Libraries"
	if got := *Toot(a); got != "Burst pipe on Main Road\n#CapeTown" {
		t.Errorf("unexpected toot %q", got)
	}
}
