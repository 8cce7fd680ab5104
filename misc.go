package dotmatrix

const preViolation = "precondition violation"
