package common

// ServiceName identifies the service in logs and as the default token issuer.
const ServiceName = "mygastronomy"

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"
