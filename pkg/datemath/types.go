package datemath

// DisplayDateLayout renders a date as M/D/YYYY without zero padding.
const DisplayDateLayout = "1/2/2006"
