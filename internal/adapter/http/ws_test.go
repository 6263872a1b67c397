package httpadapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"crowdfund/internal/core/domain"
)

type recordingWS struct {
	served []domain.Address
}

func (ws *recordingWS) ServeWS(w http.ResponseWriter, _ *http.Request, campaign domain.Address) error {
	ws.served = append(ws.served, campaign)
	w.WriteHeader(http.StatusAccepted)
	return nil
}

func TestCampaignFeed(t *testing.T) {
	ws := &recordingWS{}
	ts := newTestServer(t, WithWebsocket(ws))
	ref := ts.createCampaign("10")

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/ws/campaigns/0x00000000000000000000000000000000000000ee", "", nil, nil))
	assert.Empty(t, ws.served)

	assert.Equal(t, http.StatusAccepted, ts.do(http.MethodGet, "/api/v1/ws/campaigns/"+ref.String(), "", nil, nil))
	assert.Equal(t, []domain.Address{ref}, ws.served)
}

func TestCampaignFeedNotMountedWithoutHub(t *testing.T) {
	ts := newTestServer(t)
	ref := ts.createCampaign("10")
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/ws/campaigns/"+ref.String(), "", nil, nil))
}
