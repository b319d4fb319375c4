package bench

// TimeProduct exposes timeProduct to the external test package.
var TimeProduct = timeProduct
