package logcontrol

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"fmtlog/pkg/sink"
)

const (
	objectPath    = "/org/freedesktop/LogControl1"
	interfaceName = "org.freedesktop.LogControl1"
)

// Controller exposes the default level of a sink.Levels table on the
// D-Bus system bus so `systemctl service-log-level` works against this
// process.
type Controller struct {
	conn       *dbus.Conn
	levels     *sink.Levels
	identifier string
}

// Creates new log control surface for the given level table.
func New(levels *sink.Levels, identifier string) (controller *Controller) {
	controller = &Controller{
		levels:     levels,
		identifier: identifier,
	}
	return
}

// Serve connects to the system bus and exports the LogControl1
// properties. Returns after export; property access is handled on the
// connection's own goroutines.
func (c *Controller) Serve() (err error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		err = fmt.Errorf("failed system bus connection: %v", err)
		return
	}
	c.conn = conn

	err = c.export()
	if err != nil {
		conn.Close()
		c.conn = nil
		return
	}
	return
}

func (c *Controller) export() (err error) {
	properties := map[string]map[string]*prop.Prop{
		interfaceName: {
			"LogLevel": {
				Value:    levelNameFromSeverity(c.levels.Default()),
				Writable: true,
				Emit:     prop.EmitTrue,
				Callback: c.setLogLevel,
			},
			"LogTarget": {
				Value:    "console",
				Writable: false,
				Emit:     prop.EmitTrue,
			},
			"SyslogIdentifier": {
				Value:    c.identifier,
				Writable: false,
				Emit:     prop.EmitTrue,
			},
		},
	}

	_, err = prop.Export(c.conn, objectPath, properties)
	if err != nil {
		err = fmt.Errorf("failed property export: %v", err)
		return
	}
	return
}

// setLogLevel applies a bus write of the LogLevel property to the level
// table.
func (c *Controller) setLogLevel(change *prop.Change) (busErr *dbus.Error) {
	level, validString := change.Value.(string)
	if !validString {
		busErr = dbus.MakeFailedError(fmt.Errorf("LogLevel must be a string"))
		return
	}

	severity, err := severityFromLevelName(level)
	if err != nil {
		busErr = dbus.MakeFailedError(err)
		return
	}

	c.levels.SetDefault(severity)
	return
}

// Close releases the bus connection.
func (c *Controller) Close() (err error) {
	if c.conn != nil {
		err = c.conn.Close()
	}
	return
}
