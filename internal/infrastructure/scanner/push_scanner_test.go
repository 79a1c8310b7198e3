package scanner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventarioQR-api/internal/application/scan"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/infrastructure/scanner"
)

func devices() []scan.Device {
	return []scan.Device{
		{ID: "cam0", Label: "Front Camera"},
		{ID: "cam1", Label: "Back Camera"},
	}
}

func TestPushScanner_EnumerateDevices_SinCamaras(t *testing.T) {
	s := scanner.New(nil)
	_, err := s.EnumerateDevices(context.Background())
	assert.ErrorIs(t, err, domain.ErrDeviceAccess, "sin cámaras configuradas la enumeración falla")
}

func TestPushScanner_EnumerateDevices(t *testing.T) {
	s := scanner.New(devices())
	got, err := s.EnumerateDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cam0", got[0].ID)
}

func TestPushScanner_StartDecoding_DispositivoDesconocido(t *testing.T) {
	s := scanner.New(devices())
	err := s.StartDecoding(context.Background(), "cam9", func(string) {})
	assert.ErrorIs(t, err, domain.ErrDeviceAccess)
}

func TestPushScanner_StartDecoding_YaActiva(t *testing.T) {
	s := scanner.New(devices())
	require.NoError(t, s.StartDecoding(context.Background(), "cam0", func(string) {}))

	err := s.StartDecoding(context.Background(), "cam1", func(string) {})
	assert.Error(t, err, "hay que detener la captura activa antes de cambiar de cámara")
}

func TestPushScanner_Deliver(t *testing.T) {
	s := scanner.New(devices())
	var got []string
	require.NoError(t, s.StartDecoding(context.Background(), "cam1", func(text string) {
		got = append(got, text)
	}))

	assert.True(t, s.Deliver("cam1", "HDW-001"))
	assert.True(t, s.Deliver("", "LWG-002"), "sin device_id la lectura se atribuye a la captura activa")
	assert.False(t, s.Deliver("cam0", "STS-003"), "lectura de una cámara distinta de la activa se descarta")
	assert.Equal(t, []string{"HDW-001", "LWG-002"}, got)
}

func TestPushScanner_Deliver_CapturaInactiva(t *testing.T) {
	s := scanner.New(devices())
	assert.False(t, s.Deliver("cam1", "HDW-001"))

	require.NoError(t, s.StartDecoding(context.Background(), "cam1", func(string) {}))
	require.NoError(t, s.StopDecoding(context.Background()))
	assert.False(t, s.Deliver("cam1", "HDW-001"), "tras StopDecoding las lecturas rezagadas se descartan")
}

func TestPushScanner_StopDecoding_Idempotente(t *testing.T) {
	s := scanner.New(devices())
	require.NoError(t, s.StopDecoding(context.Background()))
	require.NoError(t, s.StopDecoding(context.Background()))
}

// El callback puede detener la captura sin interbloquearse con Deliver.
func TestPushScanner_Deliver_CallbackPuedeDetener(t *testing.T) {
	s := scanner.New(devices())
	require.NoError(t, s.StartDecoding(context.Background(), "cam1", func(string) {
		require.NoError(t, s.StopDecoding(context.Background()))
	}))

	assert.True(t, s.Deliver("cam1", "HDW-001"))
	assert.False(t, s.Deliver("cam1", "HDW-001"), "la primera lectura detuvo la captura")
}
