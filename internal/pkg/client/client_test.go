package client

import (
	"context"
	"io"
	"testing"
	"time"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"
	"github.com/raymonelina/grpc-playground/api/proto/gen/pb-go/mocks"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adsList(version uint32, adID string) *adspb.AdsList {
	return &adspb.AdsList{
		Version: version,
		Ads: []*adspb.Ad{
			{AsinId: "B000123", AdId: adID, Score: 0.5},
		},
	}
}

func newTestClient(t *testing.T) (*Client, *mocks.AdsService_GetAdsClient) {
	t.Helper()
	c, err := NewClient(
		WithServerPort(50051),
	)
	require.NoError(t, err)
	mockChannel := &mocks.AdsService_GetAdsClient{}
	c.channel = mockChannel
	return c, mockChannel
}

func TestGetAdsSelectsHighestVersion(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(nil)
	mockChannel.On("CloseSend").Return(nil)
	mockChannel.On("Recv").Return(adsList(1, "ad_v1"), nil).Once()
	mockChannel.On("Recv").Return(adsList(2, "ad_v2"), nil).Once()
	mockChannel.On("Recv").Return(nil, io.EOF)

	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, uint32(2), result.Version)
	require.Equal(t, "ad_v2", result.Ads[0].AdId)
}

func TestGetAdsLastWriteWinsPerVersion(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(nil)
	mockChannel.On("CloseSend").Return(nil)
	mockChannel.On("Recv").Return(adsList(2, "early"), nil).Once()
	mockChannel.On("Recv").Return(adsList(3, "immediate_v3"), nil).Once()
	mockChannel.On("Recv").Return(adsList(3, "deferred_v3"), nil).Once()
	mockChannel.On("Recv").Return(nil, io.EOF)

	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, uint32(3), result.Version)
	// Whichever version 3 batch physically arrived last is kept.
	require.Equal(t, "deferred_v3", result.Ads[0].AdId)
}

func TestGetAdsEmptyBufferIsNotAnError(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(nil)
	mockChannel.On("CloseSend").Return(nil)
	mockChannel.On("Recv").Return(nil, io.EOF)

	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestGetAdsReceiveErrorBoundsQuality(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(nil)
	mockChannel.On("CloseSend").Return(nil)
	mockChannel.On("Recv").Return(adsList(1, "only"), nil).Once()
	mockChannel.On("Recv").Return(nil, errors.New("stream broke"))

	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, uint32(1), result.Version)
}

func TestGetAdsReceiveErrorWithEmptyBuffer(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(nil)
	mockChannel.On("CloseSend").Return(nil)
	mockChannel.On("Recv").Return(nil, errors.New("stream broke"))

	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestGetAdsSendFailureIsFatal(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(errors.New("connection refused"))
	mockChannel.On("Recv").Return(nil, io.EOF).Maybe()

	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.Error(t, err)
	require.Nil(t, result)
}

func TestGetAdsRequiresConnection(t *testing.T) {
	c, err := NewClient(
		WithServerPort(50051),
	)
	require.NoError(t, err)
	_, err = c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestGetAdsDeadlineCutsOffSlowStream(t *testing.T) {
	c, mockChannel := newTestClient(t)
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Return(nil)
	mockChannel.On("CloseSend").Return(nil)
	mockChannel.On("Recv").Return(adsList(2, "fast"), nil).Once()
	mockChannel.On("Recv").Run(func(mock.Arguments) {
		time.Sleep(500 * time.Millisecond)
	}).Return(nil, io.EOF).Maybe()

	start := time.Now()
	result, err := c.GetAds(context.Background(), "coffee maker", "B000123", "refined")
	elapsed := time.Since(start)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, uint32(2), result.Version)
	// The deadline, not the hung Recv, bounds the call: 50ms inter-send
	// delay plus at most 120ms deadline, with scheduling slack.
	require.Less(t, elapsed, 400*time.Millisecond)
}

func TestDrawDeadlineBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := drawDeadline()
		require.GreaterOrEqual(t, d, DeadlineMinMS*time.Millisecond)
		require.LessOrEqual(t, d, DeadlineMaxMS*time.Millisecond)
	}
}

func TestSendContextsChoreography(t *testing.T) {
	c, mockChannel := newTestClient(t)
	var sent []*adspb.Context
	var sendTimes []time.Time
	mockChannel.On("Send", mock.IsType(&adspb.Context{})).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(0).(*adspb.Context))
		sendTimes = append(sendTimes, time.Now())
	}).Return(nil)
	mockChannel.On("CloseSend").Return(nil)

	require.NoError(t, c.sendContexts(context.Background(), "coffee maker", "B000123", "refined"))
	require.Len(t, sent, 2)
	// The first context always goes out with an empty understanding.
	require.Equal(t, "", sent[0].Understanding)
	require.Equal(t, "refined", sent[1].Understanding)
	require.Equal(t, sent[0].Query, sent[1].Query)
	require.Equal(t, sent[0].AsinId, sent[1].AsinId)
	require.GreaterOrEqual(t, sendTimes[1].Sub(sendTimes[0]), RefineDelay)
}
