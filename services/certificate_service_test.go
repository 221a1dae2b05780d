package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCertificateService(f *medalFixture, uploader storage.FileUploader) CertificateService {
	return NewCertificateService(f.athletes, f.participants, f.classes, f.competitions, f.matches, uploader, discardLogger())
}

func TestCertificateService_AthleteCertificates(t *testing.T) {
	f := newMedalFixture()
	svc := newCertificateService(f, nil)

	certs, err := svc.AthleteCertificates(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, certs, 1)

	cert := certs[0]
	assert.Equal(t, "Budi", cert.AthleteName)
	assert.Equal(t, "Garuda", cert.DojangName)
	assert.Equal(t, "Kejurda Jabar", cert.CompetitionName)
	assert.Equal(t, brackets.PlacementGold, cert.Placement)
	assert.Equal(t, "First Winner", cert.PlacementText)
}

func TestCertificateService_AthleteWithoutRegistrations(t *testing.T) {
	f := newMedalFixture()
	svc := newCertificateService(f, nil)

	certs, err := svc.AthleteCertificates(context.Background(), 17)
	require.NoError(t, err)
	assert.Empty(t, certs)

	_, err = svc.AthleteCertificate(context.Background(), 17, 1)
	assert.ErrorIs(t, err, ErrNotRegisteredInClass)

	_, err = svc.AthleteCertificates(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAthleteNotFound)
}

func TestCertificateService_Render(t *testing.T) {
	svc := newCertificateService(newMedalFixture(), nil)
	cert := &models.Certificate{
		AthleteName:     "Budi <Santoso>",
		DojangName:      "Garuda",
		CompetitionName: "Kejurda Jabar",
		ClassLabel:      "Kyorugi Prestasi - Junior - Putra - Under 55 kg",
		Placement:       brackets.PlacementBronze,
		PlacementText:   brackets.PlacementBronze.DisplayText(),
	}

	var buf bytes.Buffer
	require.NoError(t, svc.Render(&buf, cert))

	html := buf.String()
	assert.Contains(t, html, "Budi &lt;Santoso&gt;")
	assert.Contains(t, html, "Third Winner")
	assert.Contains(t, html, "Kyorugi Prestasi - Junior - Putra - Under 55 kg")

	assert.ErrorIs(t, svc.Render(&buf, nil), ErrValidationFailed)
}

func TestCertificateService_Publish(t *testing.T) {
	f := newMedalFixture()
	uploader := newFakeUploader()
	svc := newCertificateService(f, uploader)

	cert, err := svc.AthleteCertificate(context.Background(), 11, 1)
	require.NoError(t, err)

	url, err := svc.Publish(context.Background(), cert)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example/certificates/1/"))
	assert.True(t, strings.HasSuffix(url, ".html"))

	require.Len(t, uploader.objects, 1)
	for _, body := range uploader.objects {
		assert.Contains(t, string(body), "First Winner")
	}
}

func TestCertificateService_PublishWithoutStorage(t *testing.T) {
	svc := newCertificateService(newMedalFixture(), nil)

	_, err := svc.Publish(context.Background(), &models.Certificate{})
	assert.ErrorIs(t, err, ErrUploadsDisabled)
}
