package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex app_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateReferenceNumber returns a short human-readable reference such
// as APP-X4QZ19 that applicants can quote over the phone or in email.
func GenerateReferenceNumber(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")
	id = strings.ReplaceAll(id, "_", "")

	if len(id) > 8 {
		id = id[:8]
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s", prefix, id))
}

const (
	UUID_PREFIX_APPLICATION  = "app"
	UUID_PREFIX_CONSULTATION = "cons"
	UUID_PREFIX_INQUIRY      = "inq"
	UUID_PREFIX_TESTIMONIAL  = "tstm"
	UUID_PREFIX_BLOG_POST    = "post"
	UUID_PREFIX_COUNTRY      = "ctry"
	UUID_PREFIX_VISA_TYPE    = "visa"
	UUID_PREFIX_DOCUMENT     = "doc"
	UUID_PREFIX_USER         = "user"
)

const (
	REFERENCE_PREFIX_APPLICATION = "APP"
)
