package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogNotifier_DoesNotPanic(t *testing.T) {
	n := LogNotifier{}
	n.Toast("request updated", KindSuccess)
	n.Toast("update failed", KindError)
	n.Toast("heads up", KindInfo)
}

func TestToastPayloadShape(t *testing.T) {
	data, err := json.Marshal(toastPayload{
		Message:   "request deleted",
		Kind:      KindSuccess,
		Timestamp: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "request deleted", out["message"])
	assert.Equal(t, "success", out["kind"])
	assert.Contains(t, out, "timestamp")
}

func TestNewMQTTNotifier_UnreachableBroker(t *testing.T) {
	_, err := NewMQTTNotifier("tcp://127.0.0.1:1", "fieldops-test", "fieldops/toasts")
	assert.Error(t, err)
}
