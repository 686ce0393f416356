//go:build linux

// Package networkmanager maps the cellular data functions onto NetworkManager's
// modem devices and gsm connection profiles.
package networkmanager

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	nm "github.com/Wifx/gonetworkmanager"
	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/darkhz/celldata/api/cellular"
)

const (
	busName       = "org.freedesktop.NetworkManager"
	objectPath    = "/org/freedesktop/NetworkManager"
	wwanProperty  = busName + ".WwanEnabled"
	gsmSetting    = "gsm"
	gsmActiveType = "gsm"
)

// Backend holds the network manager session.
type Backend struct {
	manager     nm.NetworkManager
	bus         *dbus.Conn
	defaultSlot *atomic.Int32

	logger zerolog.Logger

	mu sync.Mutex
}

var _ cellular.Native = (*Backend)(nil)

// New connects to NetworkManager over the system bus.
func New(logger zerolog.Logger) (*Backend, error) {
	manager, err := nm.NewNetworkManager()
	if err != nil {
		return nil, fault.Wrap(err,
			fctx.With(context.Background(), "error_at", "networkmanager-init"),
			ftag.With(ftag.Internal),
			fmsg.With("Cannot connect to NetworkManager"),
		)
	}

	bus, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fault.Wrap(err,
			fctx.With(context.Background(), "error_at", "networkmanager-bus"),
			ftag.With(ftag.Internal),
			fmsg.With("Cannot connect to the system bus"),
		)
	}

	return &Backend{
		manager:     manager,
		bus:         bus,
		defaultSlot: atomic.NewInt32(0),
		logger:      logger,
	}, nil
}

// Close closes the system bus connection.
func (b *Backend) Close() error {
	return b.bus.Close()
}

// IsCellularDataEnabled returns whether WWAN is enabled.
func (b *Backend) IsCellularDataEnabled() (bool, cellular.ErrorSentinel) {
	enabled, err := b.manager.GetPropertyWwanEnabled()

	return enabled, b.sentinel("IsDataEnabled", err)
}

// EnableCellularData enables WWAN.
func (b *Backend) EnableCellularData() cellular.ErrorSentinel {
	return b.sentinel("EnableData", b.setWwan(true))
}

// DisableCellularData disables WWAN.
func (b *Backend) DisableCellularData() cellular.ErrorSentinel {
	return b.sentinel("DisableData", b.setWwan(false))
}

// DefaultCellularDataSlotID returns the index of the default modem.
func (b *Backend) DefaultCellularDataSlotID() int32 {
	return b.defaultSlot.Load()
}

// CellularDataState returns the connection state of the default modem.
func (b *Backend) CellularDataState() (int32, cellular.ErrorSentinel) {
	modem, sentinel := b.modem("GetConnectionState", b.defaultSlot.Load())
	if sentinel.IsError() {
		return int32(cellular.StateUnknown), sentinel
	}

	state, err := modem.GetPropertyState()
	if err != nil {
		return int32(cellular.StateUnknown), b.sentinel("GetConnectionState", err)
	}

	return int32(connectionState(state)), cellular.Success()
}

// DisableCellularDataRoaming restricts the modem's gsm profiles to the home network.
func (b *Backend) DisableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	return b.setRoaming("DisableRoaming", slotID, false)
}

// EnableCellularDataRoaming allows the modem's gsm profiles to roam.
func (b *Backend) EnableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	return b.setRoaming("EnableRoaming", slotID, true)
}

// IsCellularDataRoamingEnabled returns whether every gsm profile of the modem may roam.
func (b *Backend) IsCellularDataRoamingEnabled(slotID int32) (bool, cellular.ErrorSentinel) {
	profiles, sentinel := b.modemProfiles("IsRoamingEnabled", slotID)
	if sentinel.IsError() {
		return false, sentinel
	}

	if len(profiles) == 0 {
		return false, cellular.Success()
	}

	for _, profile := range profiles {
		if homeOnly, _ := profile.settings[gsmSetting]["home-only"].(bool); homeOnly {
			return false, cellular.Success()
		}
	}

	return true, cellular.Success()
}

// SetDefaultCellularDataSlotID sets the index of the default modem.
func (b *Backend) SetDefaultCellularDataSlotID(slotID int32) cellular.ErrorSentinel {
	if _, sentinel := b.modem("SetDefaultSlotId", slotID); sentinel.IsError() {
		return sentinel
	}

	b.defaultSlot.Store(slotID)

	return cellular.Success()
}

// CellularDataFlowType reports no flow, NetworkManager does not expose traffic direction.
func (b *Backend) CellularDataFlowType(int32) int32 {
	return int32(cellular.FlowNone)
}

// SetPreferredApn activates the gsm profile at the position apnID on the default modem.
// It reports false if no profile exists at that position.
func (b *Backend) SetPreferredApn(apnID int32) (bool, cellular.ErrorSentinel) {
	b.mu.Lock()
	defer b.mu.Unlock()

	profiles, sentinel := b.profiles("SetPreferredApn")
	if sentinel.IsError() {
		return false, sentinel
	}

	if apnID < 0 || int(apnID) >= len(profiles) {
		return false, cellular.Success()
	}

	modem, sentinel := b.modem("SetPreferredApn", b.defaultSlot.Load())
	if sentinel.IsError() {
		return false, sentinel
	}

	if _, err := b.manager.ActivateConnection(profiles[apnID].conn, modem, nil); err != nil {
		return false, b.sentinel("SetPreferredApn", err)
	}

	return true, cellular.Success()
}

// DefaultCellularDataSimID returns the SIM of the default modem.
func (b *Backend) DefaultCellularDataSimID() int32 {
	return b.defaultSlot.Load() + 1
}

// QueryApnIDs returns the positions of the gsm profiles matching the filter.
func (b *Backend) QueryApnIDs(filter cellular.NativeApnInfo) ([]uint32, cellular.ErrorSentinel) {
	profiles, sentinel := b.profiles("QueryApnIds")
	if sentinel.IsError() {
		return nil, sentinel
	}

	ids := []uint32{}
	for i, profile := range profiles {
		if matches(filter, profile.apn()) {
			ids = append(ids, uint32(i))
		}
	}

	return ids, cellular.Success()
}

// QueryAllApns returns all gsm profiles.
func (b *Backend) QueryAllApns() ([]cellular.NativeApnInfo, cellular.ErrorSentinel) {
	profiles, sentinel := b.profiles("QueryAllApns")
	if sentinel.IsError() {
		return nil, sentinel
	}

	apns := make([]cellular.NativeApnInfo, 0, len(profiles))
	for _, profile := range profiles {
		apns = append(apns, profile.apn())
	}

	return apns, cellular.Success()
}

// ActiveApnName returns the gsm APN of the active gsm connection, if any.
func (b *Backend) ActiveApnName() (string, cellular.ErrorSentinel) {
	activeConnections, err := b.manager.GetPropertyActiveConnections()
	if err != nil {
		return "", b.sentinel("GetActiveApnName", err)
	}

	for _, activeConn := range activeConnections {
		ctype, err := activeConn.GetPropertyType()
		if err != nil {
			return "", b.sentinel("GetActiveApnName", err)
		}

		if ctype != gsmActiveType {
			continue
		}

		conn, err := activeConn.GetPropertyConnection()
		if err != nil {
			return "", b.sentinel("GetActiveApnName", err)
		}

		settings, err := conn.GetSettings()
		if err != nil {
			return "", b.sentinel("GetActiveApnName", err)
		}

		apn, _ := settings[gsmSetting]["apn"].(string)

		return apn, cellular.Success()
	}

	return "", cellular.Success()
}

// setWwan sets the WWAN switch of NetworkManager.
func (b *Backend) setWwan(enable bool) error {
	return b.bus.Object(busName, objectPath).SetProperty(wwanProperty, dbus.MakeVariant(enable))
}

// setRoaming updates the home-only setting of every gsm profile of the modem.
func (b *Backend) setRoaming(op string, slotID int32, enable bool) cellular.ErrorSentinel {
	b.mu.Lock()
	defer b.mu.Unlock()

	profiles, sentinel := b.modemProfiles(op, slotID)
	if sentinel.IsError() {
		return sentinel
	}

	for _, profile := range profiles {
		profile.settings[gsmSetting]["home-only"] = !enable
		delete(profile.settings, "ipv6")

		if err := profile.conn.Update(profile.settings); err != nil {
			return b.sentinel(op, err)
		}
	}

	return cellular.Success()
}

// modems returns the modem devices ordered by their object path.
func (b *Backend) modems() ([]nm.Device, error) {
	devices, err := b.manager.GetPropertyDevices()
	if err != nil {
		return nil, err
	}

	modems := make([]nm.Device, 0, len(devices))
	for _, device := range devices {
		dtype, err := device.GetPropertyDeviceType()
		if err != nil {
			return nil, err
		}

		if dtype == nm.NmDeviceTypeModem {
			modems = append(modems, device)
		}
	}

	slices.SortFunc(modems, func(a, c nm.Device) int {
		return comparePaths(a.GetPath(), c.GetPath())
	})

	return modems, nil
}

// modem returns the modem device at the slot.
func (b *Backend) modem(op string, slotID int32) (nm.Device, cellular.ErrorSentinel) {
	modems, err := b.modems()
	if err != nil {
		return nil, b.sentinel(op, err)
	}

	if len(modems) == 0 {
		return nil, cellular.Failure(cellular.ErrCodeNoSimCard, cellular.CodeDescription(cellular.ErrCodeNoSimCard))
	}

	if slotID < 0 || int(slotID) >= len(modems) {
		return nil, cellular.Failure(cellular.ErrCodeArgument, "slot id is invalid")
	}

	return modems[slotID], cellular.Success()
}

// modemProfiles returns the gsm profiles that are available on the modem at the slot.
func (b *Backend) modemProfiles(op string, slotID int32) ([]profile, cellular.ErrorSentinel) {
	modem, sentinel := b.modem(op, slotID)
	if sentinel.IsError() {
		return nil, sentinel
	}

	conns, err := modem.GetPropertyAvailableConnections()
	if err != nil {
		return nil, b.sentinel(op, err)
	}

	profiles, err := gsmProfiles(conns)
	if err != nil {
		return nil, b.sentinel(op, err)
	}

	return profiles, cellular.Success()
}

// profiles returns every gsm profile known to NetworkManager.
func (b *Backend) profiles(op string) ([]profile, cellular.ErrorSentinel) {
	settings, err := nm.NewSettings()
	if err != nil {
		return nil, b.sentinel(op, err)
	}

	conns, err := settings.ListConnections()
	if err != nil {
		return nil, b.sentinel(op, err)
	}

	profiles, err := gsmProfiles(conns)
	if err != nil {
		return nil, b.sentinel(op, err)
	}

	return profiles, cellular.Success()
}

// sentinel converts a D-Bus error to a service failure.
func (b *Backend) sentinel(op string, err error) cellular.ErrorSentinel {
	if err == nil {
		return cellular.Success()
	}

	b.logger.Warn().Err(err).Str("op", op).Msg("networkmanager: call failed")

	return cellular.Failure(cellular.ErrCodeService, err.Error())
}

// connectionState maps a modem device state to a connection state.
func connectionState(state nm.NmDeviceState) cellular.ConnectionState {
	switch state {
	case nm.NmDeviceStateActivated:
		return cellular.StateConnected

	case nm.NmDeviceStateDisconnected, nm.NmDeviceStateUnavailable,
		nm.NmDeviceStateDeactivating, nm.NmDeviceStateFailed:
		return cellular.StateDisconnected

	case nm.NmDeviceStateUnknown, nm.NmDeviceStateUnmanaged:
		return cellular.StateUnknown
	}

	return cellular.StateConnecting
}

func comparePaths(a, b dbus.ObjectPath) int {
	return strings.Compare(string(a), string(b))
}
