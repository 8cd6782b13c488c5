package redis

import "testing"

func TestHealthCheckUnreachable(t *testing.T) {
	// nothing listens on port 1
	client, err := NewClient(NewRedisConfig().WithPort(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	health := NewHealthChecker(client).HealthCheck()
	if health.Status != StatusDown {
		t.Errorf("Status = %s, want DOWN", health.Status)
	}
	if health.Details["address"] != "localhost:1" || health.Details["message"] == "" {
		t.Errorf("unexpected details %v", health.Details)
	}
}
