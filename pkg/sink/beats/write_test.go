package beats

import (
	"testing"
	"time"

	"fmtlog/pkg/fmtlog"
)

func TestBuildEvent(t *testing.T) {
	at := time.Date(2026, 2, 24, 8, 59, 17, 0, time.UTC)
	location := fmtlog.Location{File: "/src/node/sensor.go", Line: 42, Function: "readLoop"}

	event := buildEvent(location, fmtlog.SeverityError, "node.sensors", "voltage low", "demo", at)

	if event["@timestamp"] != at {
		t.Errorf("expected @timestamp %v, got %v", at, event["@timestamp"])
	}
	if event["message"] != "voltage low" {
		t.Errorf("expected message 'voltage low', got %v", event["message"])
	}

	logField, validType := event["log"].(map[string]interface{})
	if !validType {
		t.Fatalf("expected log field to be a map, got %T", event["log"])
	}
	if logField["level"] != "error" {
		t.Errorf("expected log.level 'error', got %v", logField["level"])
	}
	if logField["logger"] != "node.sensors" {
		t.Errorf("expected log.logger 'node.sensors', got %v", logField["logger"])
	}

	origin, validType := logField["origin"].(map[string]interface{})
	if !validType {
		t.Fatalf("expected log.origin to be a map, got %T", logField["origin"])
	}
	if origin["function"] != "readLoop" {
		t.Errorf("expected log.origin.function 'readLoop', got %v", origin["function"])
	}

	file, validType := origin["file"].(map[string]interface{})
	if !validType {
		t.Fatalf("expected log.origin.file to be a map, got %T", origin["file"])
	}
	if file["name"] != "sensor.go" {
		t.Errorf("expected log.origin.file.name 'sensor.go', got %v", file["name"])
	}
	if file["line"] != 42 {
		t.Errorf("expected log.origin.file.line 42, got %v", file["line"])
	}

	agent, validType := event["agent"].(map[string]interface{})
	if !validType {
		t.Fatalf("expected agent field to be a map, got %T", event["agent"])
	}
	if agent["name"] != "demo" {
		t.Errorf("expected agent.name 'demo', got %v", agent["name"])
	}
}
