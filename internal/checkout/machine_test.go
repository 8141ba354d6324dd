package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/models"
)

func TestMachineHappyPath(t *testing.T) {
	order := &models.GatewayOrder{OrderID: "rzp_1", Amount: 4200, Currency: "INR", KeyID: "key"}

	state, err := Next(State{}, EventBegin{})
	require.NoError(t, err)
	assert.Equal(t, PhaseCreatingOrder, state.Phase)

	state, err = Next(state, EventOrderCreated{Order: order})
	require.NoError(t, err)
	assert.Equal(t, PhaseLoadingGateway, state.Phase)
	assert.Equal(t, order, state.Order)

	state, err = Next(state, EventGatewayReady{})
	require.NoError(t, err)
	assert.Equal(t, PhaseAwaitingGateway, state.Phase)

	state, err = Next(state, EventVerifying{})
	require.NoError(t, err)
	assert.Equal(t, PhaseVerifying, state.Phase)

	state, err = Next(state, EventVerified{OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, PhaseSucceeded, state.Phase)
	assert.Equal(t, "order-1", state.OrderID)
}

func TestMachineRejectsBeginWhileInFlight(t *testing.T) {
	for _, phase := range []Phase{PhaseCreatingOrder, PhaseLoadingGateway, PhaseAwaitingGateway, PhaseVerifying} {
		_, err := Next(State{Phase: phase}, EventBegin{})
		assert.Error(t, err, "begin must be rejected in phase %s", phase)
	}
	for _, phase := range []Phase{PhaseIdle, PhaseSucceeded, PhaseFailed} {
		next, err := Next(State{Phase: phase}, EventBegin{})
		require.NoError(t, err, "begin must be allowed in resting phase %s", phase)
		assert.Equal(t, PhaseCreatingOrder, next.Phase)
	}
}

func TestMachineFailureCarriesReason(t *testing.T) {
	order := &models.GatewayOrder{OrderID: "rzp_1"}
	state := State{Phase: PhaseAwaitingGateway, Order: order}

	failed, err := Next(state, EventFailed{Reason: "Payment was cancelled."})
	require.NoError(t, err)
	assert.Equal(t, PhaseFailed, failed.Phase)
	assert.Equal(t, "Payment was cancelled.", failed.Reason)
	assert.Equal(t, order, failed.Order, "the order handle stays for the failure report")
}

func TestMachineRejectsOutOfOrderEvents(t *testing.T) {
	_, err := Next(State{Phase: PhaseIdle}, EventVerifying{})
	assert.Error(t, err)

	_, err = Next(State{Phase: PhaseIdle}, EventVerified{OrderID: "x"})
	assert.Error(t, err)

	_, err = Next(State{Phase: PhaseSucceeded}, EventFailed{Reason: "late"})
	assert.Error(t, err, "a resolved checkout cannot fail afterwards")

	_, err = Next(State{Phase: PhaseAwaitingGateway}, EventOrderCreated{})
	assert.Error(t, err)
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "awaiting_gateway", PhaseAwaitingGateway.String())
	assert.Equal(t, "failed", PhaseFailed.String())
}
