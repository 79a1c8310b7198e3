package dto

import "time"

// ScanDeviceResponse cámara disponible para escanear.
type ScanDeviceResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ScanDeviceListResponse lista de cámaras.
type ScanDeviceListResponse struct {
	Devices []ScanDeviceResponse `json:"devices"`
}

// StartScanRequest arranca la decodificación; DeviceID vacío deja que la
// sesión elija (prefiere la cámara trasera).
type StartScanRequest struct {
	DeviceID string `json:"device_id"`
}

// ScanModeRequest cambia el modo de escaneo: inbound, outbound o lookup.
type ScanModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=inbound outbound lookup"`
}

// ScanFrameRequest payload decodificado que entrega el cliente (dueño de la
// cámara) por cada lectura exitosa.
type ScanFrameRequest struct {
	DeviceID string `json:"device_id"`
	Text     string `json:"text" validate:"required"`
}

// ConfirmScanRequest confirma el escaneo pendiente con la cantidad indicada.
type ConfirmScanRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Notes    string `json:"notes"`
}

// PendingScanDTO escaneo a la espera de confirmación del operador.
type PendingScanDTO struct {
	SKU       string    `json:"sku"`
	ScannedAt time.Time `json:"scanned_at"`
}

// ScanStatusResponse estado de la sesión de escaneo.
type ScanStatusResponse struct {
	Mode        string          `json:"mode"`
	Decoding    bool            `json:"decoding"`
	DeviceID    string          `json:"device_id,omitempty"`
	Pending     *PendingScanDTO `json:"pending,omitempty"`
	LastMessage string          `json:"last_message,omitempty"`
	LastItemID  string          `json:"last_item_id,omitempty"`
}
