package scan

import "context"

// Device describe una cámara disponible para decodificar códigos.
type Device struct {
	ID    string
	Label string
}

// Scanner es la capacidad externa que convierte la captura de cámara en
// textos decodificados (el payload de la etiqueta: un SKU). Los errores de
// decodificación por frame no se reportan; solo importan las lecturas
// exitosas, entregadas por el callback.
//
// StopDecoding debe completarse antes de cambiar de dispositivo o de
// desmontar la sesión, para liberar la cámara.
type Scanner interface {
	EnumerateDevices(ctx context.Context) ([]Device, error)
	StartDecoding(ctx context.Context, deviceID string, onDecoded func(text string)) error
	StopDecoding(ctx context.Context) error
}
