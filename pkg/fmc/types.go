package fmc

// Object is an FMC network or host object as returned by the object
// listing endpoints (expanded form). Value is the literal address string:
// a CIDR or address for network objects, a single IP for host objects.
type Object struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ObjectRef is the {type,id,name} reference shape FMC expects when a
// payload points at an existing object.
type ObjectRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Gateway wraps the gateway object reference of a static route.
type Gateway struct {
	Object ObjectRef `json:"object"`
}

// StaticRoute is the wire shape accepted by the ipv4staticroutes endpoint.
type StaticRoute struct {
	InterfaceName    string      `json:"interfaceName"`
	SelectedNetworks []ObjectRef `json:"selectedNetworks"`
	Gateway          Gateway     `json:"gateway"`
	MetricValue      int         `json:"metricValue"`
	Type             string      `json:"type"`
	IsTunneled       bool        `json:"isTunneled"`
}

// Device is an FTD device record.
type Device struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model,omitempty"`
}
