// Package scanner implementa el puerto de escaneo con payloads decodificados
// que el cliente entrega por HTTP: el cliente es el dueño de la cámara y del
// decodificador de frames, el servidor solo recibe los textos ya decodificados
// de cada lectura exitosa.
package scanner

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/InventarioQR-api/internal/application/scan"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
)

// PushScanner implementación de scan.Scanner alimentada por Deliver.
type PushScanner struct {
	mu        sync.Mutex
	devices   []scan.Device
	active    bool
	deviceID  string
	onDecoded func(text string)
}

// New construye el escáner con el catálogo de dispositivos configurado.
func New(devices []scan.Device) *PushScanner {
	return &PushScanner{devices: devices}
}

// EnumerateDevices devuelve las cámaras configuradas; ErrDeviceAccess si no
// hay ninguna (permiso denegado o equipo sin cámara).
func (s *PushScanner) EnumerateDevices(ctx context.Context) ([]scan.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.devices) == 0 {
		return nil, domain.ErrDeviceAccess
	}
	out := make([]scan.Device, len(s.devices))
	copy(out, s.devices)
	return out, nil
}

// StartDecoding activa la entrega de lecturas del dispositivo indicado. Falla
// si ya hay una captura activa: hay que detenerla antes de cambiar de cámara.
func (s *PushScanner) StartDecoding(ctx context.Context, deviceID string, onDecoded func(text string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return fmt.Errorf("scanner: decodificación ya activa en %s", s.deviceID)
	}
	found := false
	for _, d := range s.devices {
		if d.ID == deviceID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrDeviceAccess
	}
	s.active = true
	s.deviceID = deviceID
	s.onDecoded = onDecoded
	return nil
}

// StopDecoding desactiva la entrega y libera el dispositivo. Idempotente.
func (s *PushScanner) StopDecoding(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.deviceID = ""
	s.onDecoded = nil
	return nil
}

// Deliver entrega una lectura decodificada. Devuelve false si se descarta:
// captura inactiva o dispositivo distinto del activo (una lectura rezagada de
// una cámara ya detenida no debe colarse).
func (s *PushScanner) Deliver(deviceID, text string) bool {
	s.mu.Lock()
	if !s.active || (deviceID != "" && deviceID != s.deviceID) || s.onDecoded == nil {
		s.mu.Unlock()
		return false
	}
	cb := s.onDecoded
	s.mu.Unlock()

	// el callback puede detener la captura; no se invoca con el lock tomado
	cb(text)
	return true
}
