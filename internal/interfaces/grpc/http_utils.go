package grpcinterface

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"golang.org/x/net/http2"
	"google.golang.org/grpc"
)

const (
	// TLSKeyFile is the name of the TLS key file.
	TLSKeyFile = "key.pem"
	// TLSCertFile is the name of the TLS certificate file.
	TLSCertFile = "cert.pem"
)

var serialNumberLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// generateTLSKeyCert creates a self-signed certificate valid for the local
// host, loopback addresses and the given extra ips and domains. Nothing is
// done if both key and cert already exist in datadir.
func generateTLSKeyCert(
	datadir string, extraIPs, extraDomains []string,
) error {
	if err := makeDirectoryIfNotExists(datadir); err != nil {
		return err
	}
	keyPath := filepath.Join(datadir, TLSKeyFile)
	certPath := filepath.Join(datadir, TLSCertFile)

	if pathExists(keyPath) && pathExists(certPath) {
		return nil
	}

	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return fmt.Errorf("failed to generate serial number: %s", err)
	}

	ipAddresses := []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}
	for _, ip := range extraIPs {
		ipAddresses = append(ipAddresses, net.ParseIP(ip))
	}

	host, err := os.Hostname()
	if err != nil {
		return err
	}
	dnsNames := []string{host}
	if host != "localhost" {
		dnsNames = append(dnsNames, "localhost")
	}
	dnsNames = append(dnsNames, extraDomains...)

	priv, err := createOrLoadTLSKey(keyPath)
	if err != nil {
		return err
	}
	keyBytes, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return err
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{"tdex-timelock"},
			CommonName:   host,
		},
		NotBefore: now.Add(-24 * time.Hour),
		NotAfter:  now.AddDate(1, 0, 0),

		KeyUsage: x509.KeyUsageKeyEncipherment |
			x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		IsCA:                  true,
		BasicConstraintsValid: true,

		DNSNames:    dnsNames,
		IPAddresses: ipAddresses,
	}

	derBytes, err := x509.CreateCertificate(
		rand.Reader, &template, &template, &priv.PublicKey, priv,
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %v", err)
	}

	certPem := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes})
	keyPem := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyBytes})

	if err := os.WriteFile(certPath, certPem, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(keyPath, keyPem, 0600); err != nil {
		os.Remove(certPath)
		return err
	}
	return nil
}

func createOrLoadTLSKey(keyPath string) (*ecdsa.PrivateKey, error) {
	if !pathExists(keyPath) {
		return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	}

	buf, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(buf)
	if block == nil || !strings.HasSuffix(block.Type, "PRIVATE KEY") {
		return nil, fmt.Errorf("tls: failed to find any PEM data in key input")
	}
	return x509.ParseECPrivateKey(block.Bytes)
}

func tlsListener(lis net.Listener, tlsKey, tlsCert string) (net.Listener, error) {
	certificate, err := tls.LoadX509KeyPair(tlsCert, tlsKey)
	if err != nil {
		return nil, err
	}

	config := &tls.Config{
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"http/1.1", http2.NextProtoTLS},
		Certificates: []tls.Certificate{certificate},
		Rand:         rand.Reader,
	}
	return tls.NewListener(lis, config), nil
}

func makeDirectoryIfNotExists(path string) error {
	if pathExists(path) {
		return nil
	}
	return os.MkdirAll(path, os.ModeDir|0755)
}

func pathExists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

/*
	gRPC web wrapper
*/

// httpHandler routes grpc-web requests to the wrapped grpc server and
// everything else to the plain http handlers.
type httpHandler struct {
	grpcWebServer *grpcweb.WrappedGrpcServer
	handlers      http.Handler
}

func (h *httpHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	if isValidRequest(req) {
		h.grpcWebServer.ServeHTTP(resp, req)
		return
	}
	h.handlers.ServeHTTP(resp, req)
}

func newGRPCWrappedServer(
	grpcServer *grpc.Server, handlers http.Handler,
) *http.Server {
	grpcWebServer := grpcweb.WrapServer(
		grpcServer,
		grpcweb.WithCorsForRegisteredEndpointsOnly(false),
		grpcweb.WithOriginFunc(func(origin string) bool { return true }),
	)
	return &http.Server{
		Handler:           &httpHandler{grpcWebServer, handlers},
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func isValidRequest(req *http.Request) bool {
	return isValidGrpcWebOptionRequest(req) || isValidGrpcWebRequest(req)
}

func isValidGrpcWebRequest(req *http.Request) bool {
	return req.Method == http.MethodPost && isValidGrpcContentTypeHeader(req.Header.Get("content-type"))
}

func isValidGrpcContentTypeHeader(contentType string) bool {
	return strings.HasPrefix(contentType, "application/grpc-web-text") ||
		strings.HasPrefix(contentType, "application/grpc-web")
}

func isValidGrpcWebOptionRequest(req *http.Request) bool {
	accessControlHeader := req.Header.Get("Access-Control-Request-Headers")
	return req.Method == http.MethodOptions &&
		strings.Contains(accessControlHeader, "x-grpc-web") &&
		strings.Contains(accessControlHeader, "content-type")
}
