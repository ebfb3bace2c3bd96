package user

type Credentials struct {
	email    Email
	password string
}

// NewCredentials only checks shape: a stored password that predates the
// current length policy must still be able to sign in.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrPasswordTooShort
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Registration is a validated sign-up form.
type Registration struct {
	fullName FullName
	phone    Phone
	email    Email
	password Password
}

// NewRegistration validates in form order and returns the first violation.
func NewRegistration(fullName, phone, email, password string) (Registration, error) {
	fn, err := NewFullName(fullName)
	if err != nil {
		return Registration{}, err
	}
	ph, err := NewPhone(phone)
	if err != nil {
		return Registration{}, err
	}
	em, err := NewEmail(email)
	if err != nil {
		return Registration{}, err
	}
	pw, err := NewPassword(password)
	if err != nil {
		return Registration{}, err
	}

	return Registration{fullName: fn, phone: ph, email: em, password: pw}, nil
}

func (r Registration) FullName() FullName { return r.fullName }
func (r Registration) Phone() Phone       { return r.phone }
func (r Registration) Email() Email       { return r.email }
func (r Registration) Password() Password { return r.password }
