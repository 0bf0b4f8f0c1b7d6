package remote

type EmptyResponse struct {
}

type BlitRequest struct {
	Screen uint8
	PosX   uint16
	PosY   uint16
	Image  []byte
}
